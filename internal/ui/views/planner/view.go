package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plannerdto "uniplan/internal/modules/planner/dto"
	"uniplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PlannerPort interface {
	Plan(ctx context.Context) plannerdto.PlanOutput
	Remove(ctx context.Context, courseID int64) (plannerdto.PlanOutput, error)
	AddSemester(ctx context.Context) (plannerdto.PlanOutput, error)
	DeleteSemester(ctx context.Context) (plannerdto.PlanOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// PlanLoadedMsg carries a fresh snapshot of the plan. The app model also
// produces it after add and move flows so this view stays current.
type PlanLoadedMsg struct {
	Plan plannerdto.PlanOutput
	Err  error
}

// MoveRequestMsg bubbles up to the app model, which opens the semester picker.
type MoveRequestMsg struct {
	CourseID int64
	Code     string
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port PlannerPort

	plan    plannerdto.PlanOutput
	cursor  int
	lastErr string

	body   viewport.Model
	width  int
	height int
}

func New(port PlannerPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{port: port, body: vp}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2

	case PlanLoadedMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err.Error()
		} else {
			m.lastErr = ""
			m.plan = msg.Plan
			if n := m.courseCount(); m.cursor >= n && n > 0 {
				m.cursor = n - 1
			}
		}
		m.body.SetContent(m.renderPlan())

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.body.SetContent(m.renderPlan())
		case "down", "j":
			if m.cursor < m.courseCount()-1 {
				m.cursor++
			}
			m.body.SetContent(m.renderPlan())
		case "d":
			if c, ok := m.selectedCourse(); ok {
				cmds = append(cmds, m.removeCmd(c.CourseID))
			}
		case "m":
			if c, ok := m.selectedCourse(); ok {
				id, code := c.CourseID, c.Code
				cmds = append(cmds, func() tea.Msg {
					return MoveRequestMsg{CourseID: id, Code: code}
				})
			}
		case "+":
			cmds = append(cmds, m.addSemesterCmd())
		case "-":
			cmds = append(cmds, m.deleteSemesterCmd())
		}
	}

	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Render(m.body.View())
	return pane
}

// Semesters returns the registry labels of the current snapshot. The app
// model feeds them to the semester picker.
func (m Model) Semesters() []string {
	return m.plan.Semesters
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) courseCount() int {
	n := 0
	for _, g := range m.plan.Groups {
		n += len(g.Courses)
	}
	return n
}

func (m Model) selectedCourse() (plannerdto.PlannedCourseOutput, bool) {
	idx := 0
	for _, g := range m.plan.Groups {
		for _, c := range g.Courses {
			if idx == m.cursor {
				return c, true
			}
			idx++
		}
	}
	return plannerdto.PlannedCourseOutput{}, false
}

func (m Model) renderPlan() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Degree Plan") + "  ")
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d credits total", m.plan.TotalCredits)) + "\n")
	if m.lastErr != "" {
		sb.WriteString(theme.Bad.Render(m.lastErr) + "\n")
	}
	sb.WriteString("\n")

	idx := 0
	for _, g := range m.plan.Groups {
		sb.WriteString(theme.Title.Render(g.Label))
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  (%d cr)", g.Credits)) + "\n")
		if len(g.Courses) == 0 {
			sb.WriteString(theme.Muted.Render("  — empty —") + "\n")
		}
		for _, c := range g.Courses {
			row := fmt.Sprintf("%-10s %-40s %2d cr  %s", c.Code, c.Name, c.Credits, c.StudyArea)
			if idx == m.cursor {
				sb.WriteString(theme.Hot.Render("> "+row) + "\n")
			} else {
				sb.WriteString("  " + row + "\n")
			}
			idx++
		}
		sb.WriteString("\n")
	}

	sb.WriteString(theme.Muted.Render("d: remove  m: move  +: add semester  -: drop last semester"))
	return sb.String()
}

func (m Model) removeCmd(courseID int64) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.Remove(context.Background(), courseID)
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}

func (m Model) addSemesterCmd() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.AddSemester(context.Background())
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}

func (m Model) deleteSemesterCmd() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.port.DeleteSemester(context.Background())
		return PlanLoadedMsg{Plan: plan, Err: err}
	}
}
