package course

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "uniplan/internal/modules/catalog/dto"
	reviewdto "uniplan/internal/modules/review/dto"
	"uniplan/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	GetCourse(ctx context.Context, id int64) (catalogdto.CourseDetailOutput, error)
}

type ReviewPort interface {
	List(ctx context.Context, courseID int64) ([]reviewdto.ReviewOutput, error)
	Submit(ctx context.Context, input reviewdto.SubmitInput) (reviewdto.SubmitOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Detail  catalogdto.CourseDetailOutput
	Reviews []reviewdto.ReviewOutput
	Err     error
}

type SubmittedMsg struct {
	Out reviewdto.SubmitOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	catalog CatalogPort
	reviews ReviewPort

	courseID int64
	detail   catalogdto.CourseDetailOutput
	list     []reviewdto.ReviewOutput
	lastErr  string

	composing   bool
	rating      int
	description textinput.Model

	body    viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(catalog CatalogPort, reviews ReviewPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	ti := textinput.New()
	ti.Placeholder = "say something about the course (optional)…"
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{catalog: catalog, reviews: reviews, body: vp, description: ti, spinner: sp}
}

func (m Model) Init() tea.Cmd { return nil }

// Open loads a course's detail and reviews. The app model calls it when a
// catalog row is opened.
func (m *Model) Open(courseID int64) tea.Cmd {
	m.courseID = courseID
	m.loading = true
	m.composing = false
	return tea.Batch(m.loadCmd(courseID), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2
		m.description.Width = m.width / 2

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		} else {
			m.lastErr = ""
			m.detail = msg.Detail
			m.list = msg.Reviews
		}
		m.body.SetContent(m.render())

	case SubmittedMsg:
		if msg.Err != nil {
			m.lastErr = "review: " + msg.Err.Error()
		} else {
			m.lastErr = ""
			m.list = msg.Out.Reviews
			m.detail = msg.Out.Course
			m.composing = false
			m.rating = 0
			m.description.SetValue("")
			m.description.Blur()
		}
		m.body.SetContent(m.render())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.composing {
			switch msg.String() {
			case "esc":
				m.composing = false
				m.rating = 0
				m.description.SetValue("")
				m.description.Blur()
			case "enter":
				if m.rating >= 1 && m.rating <= 5 {
					cmds = append(cmds, m.submitCmd())
				}
			case "1", "2", "3", "4", "5":
				if !m.description.Focused() {
					m.rating = int(msg.String()[0] - '0')
				} else {
					var cmd tea.Cmd
					m.description, cmd = m.description.Update(msg)
					cmds = append(cmds, cmd)
				}
			case "tab":
				if m.description.Focused() {
					m.description.Blur()
				} else {
					cmds = append(cmds, m.description.Focus())
				}
			default:
				var cmd tea.Cmd
				m.description, cmd = m.description.Update(msg)
				cmds = append(cmds, cmd)
			}
			m.body.SetContent(m.render())
			return m, tea.Batch(cmds...)
		}

		if msg.String() == "r" && m.courseID != 0 {
			m.composing = true
			m.rating = 0
			m.body.SetContent(m.render())
			return m, nil
		}
	}

	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading course…")
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.body.View())
}

// Composing reports whether the review form is capturing input.
func (m Model) Composing() bool { return m.composing }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) render() string {
	d := m.detail
	if d.ID == 0 {
		return theme.Muted.Render("Open a course from the Catalog tab (enter)")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Code+"  "+d.Name) + "\n")
	if m.lastErr != "" {
		sb.WriteString(theme.Bad.Render(m.lastErr) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("credits:  ") + fmt.Sprintf("%d", d.Credits) + "\n")
	sb.WriteString(theme.Muted.Render("level:    ") + fmt.Sprintf("%d", d.Level) + "\n")
	sb.WriteString(theme.Muted.Render("area:     ") + d.StudyArea + "\n")
	sb.WriteString(theme.Muted.Render("offered:  ") + strings.Join(d.Semesters, ", ") + "\n")
	if len(d.Prerequisites) > 0 {
		sb.WriteString(theme.Muted.Render("prereqs:  ") + strings.Join(d.Prerequisites, ", ") + "\n")
	}
	if d.Description != "" {
		sb.WriteString("\n" + d.Description + "\n")
	}
	if d.Aim != "" {
		sb.WriteString("\n" + theme.Muted.Render("aim: ") + d.Aim + "\n")
	}

	if len(d.Assessments) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Assessment") + "\n")
		for _, a := range d.Assessments {
			weight := "—"
			if a.Weight != nil {
				weight = fmt.Sprintf("%d%%", *a.Weight)
			}
			sb.WriteString(fmt.Sprintf("  %-28s %-6s %s", a.Task, weight, theme.Muted.Render(a.Category)))
			if a.Hurdle {
				sb.WriteString("  " + theme.Bad.Render("hurdle"))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n" + theme.Title.Render("Reviews") + "  ")
	sb.WriteString(theme.Rating.Render(fmt.Sprintf("%.1f ★", d.AverageRating)))
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("  (%d)", d.TotalReviews)) + "\n")
	if len(m.list) == 0 {
		sb.WriteString(theme.Muted.Render("  no reviews yet") + "\n")
	}
	for _, r := range m.list {
		stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
		sb.WriteString("  " + theme.Rating.Render(stars) + "  " + theme.Muted.Render(r.User))
		sb.WriteString(theme.Muted.Render("  " + r.CreatedAt.Format("2006-01-02")))
		sb.WriteString("\n")
		if r.Description != "" {
			sb.WriteString("    " + r.Description + "\n")
		}
	}

	sb.WriteString("\n")
	if m.composing {
		stars := strings.Repeat("★", m.rating) + strings.Repeat("☆", 5-m.rating)
		sb.WriteString(theme.Hot.Render("New review") + "  " + theme.Rating.Render(stars) + "\n")
		sb.WriteString("  " + m.description.View() + "\n")
		sb.WriteString(theme.Muted.Render("  1–5: rate  tab: description  enter: submit  esc: cancel"))
	} else {
		sb.WriteString(theme.Muted.Render("r: write a review"))
	}
	return sb.String()
}

func (m Model) loadCmd(courseID int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.GetCourse(context.Background(), courseID)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		list, err := m.reviews.List(context.Background(), courseID)
		return LoadedMsg{Detail: detail, Reviews: list, Err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	input := reviewdto.SubmitInput{
		CourseID:    m.courseID,
		Rating:      m.rating,
		Description: strings.TrimSpace(m.description.Value()),
	}
	return func() tea.Msg {
		out, err := m.reviews.Submit(context.Background(), input)
		return SubmittedMsg{Out: out, Err: err}
	}
}
