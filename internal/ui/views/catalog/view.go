package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "uniplan/internal/modules/catalog/dto"
	"uniplan/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListCourses(ctx context.Context, filter catalogdto.FilterInput) ([]catalogdto.CourseOutput, error)
	Refresh(ctx context.Context) error
	AssessmentTypes(ctx context.Context) ([]catalogdto.OptionOutput, error)
	StudyAreas(ctx context.Context) ([]catalogdto.OptionOutput, error)
	ProgramLevels(ctx context.Context) ([]catalogdto.OptionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CoursesLoadedMsg struct {
	Courses []catalogdto.CourseOutput
	Err     error
}

type OptionsLoadedMsg struct {
	Assessments []catalogdto.OptionOutput
	StudyAreas  []catalogdto.OptionOutput
	Levels      []catalogdto.OptionOutput
	Err         error
}

// ─── list item ───────────────────────────────────────────────────────────────

type courseItem struct {
	course catalogdto.CourseOutput
}

func (i courseItem) Title() string { return i.course.Code + "  " + i.course.Name }
func (i courseItem) Description() string {
	return fmt.Sprintf("%s  L%d  %s  %d cr", i.course.StudyArea, i.course.Level, i.course.AssessmentType, i.course.Credits)
}
func (i courseItem) FilterValue() string { return i.course.Code + " " + i.course.Name }

// allOption heads every filter cycle.
const allOption = "all"

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port CatalogPort

	list    list.Model
	query   textinput.Model
	spinner spinner.Model
	loading bool

	filter      catalogdto.FilterInput
	assessments []string
	studyAreas  []string
	levels      []string
	semesters   []string

	courses []catalogdto.CourseOutput
	width   int
	height  int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Catalog"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	// The catalog has its own query box wired to the filter engine; the
	// built-in fuzzy filter would bypass it.
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "search code or name…"
	ti.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		query:   ti,
		spinner: sp,
		loading: true,
		filter: catalogdto.FilterInput{
			Assessment: allOption,
			Level:      allOption,
			StudyArea:  allOption,
			Semester:   allOption,
		},
		semesters: []string{allOption, "Semester 1", "Semester 2", "Summer Semester"},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCoursesCmd(), m.loadOptionsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case CoursesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Catalog — " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Catalog"
		m.courses = msg.Courses
		items := make([]list.Item, len(msg.Courses))
		for i, c := range msg.Courses {
			items[i] = courseItem{course: c}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case OptionsLoadedMsg:
		if msg.Err == nil {
			m.assessments = optionCycle(msg.Assessments)
			m.studyAreas = optionCycle(msg.StudyAreas)
			m.levels = optionCycle(msg.Levels)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.query.Focused() {
			switch msg.String() {
			case "esc", "enter":
				m.query.Blur()
			default:
				var cmd tea.Cmd
				m.query, cmd = m.query.Update(msg)
				cmds = append(cmds, cmd)
				if m.filter.Query != m.query.Value() {
					m.filter.Query = m.query.Value()
					cmds = append(cmds, m.loadCoursesCmd())
				}
			}
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "/":
			cmds = append(cmds, m.query.Focus())
			return m, tea.Batch(cmds...)
		case "a":
			m.filter.Assessment = cycle(m.assessments, m.filter.Assessment)
			cmds = append(cmds, m.loadCoursesCmd())
		case "l":
			m.filter.Level = cycle(m.levels, m.filter.Level)
			cmds = append(cmds, m.loadCoursesCmd())
		case "s":
			m.filter.StudyArea = cycle(m.studyAreas, m.filter.StudyArea)
			cmds = append(cmds, m.loadCoursesCmd())
		case "m":
			m.filter.Semester = cycle(m.semesters, m.filter.Semester)
			cmds = append(cmds, m.loadCoursesCmd())
		case "x":
			m.filter = catalogdto.FilterInput{
				Assessment: allOption, Level: allOption, StudyArea: allOption, Semester: allOption,
			}
			m.query.SetValue("")
			cmds = append(cmds, m.loadCoursesCmd())
		case "R":
			m.loading = true
			cmds = append(cmds, m.refreshCmd(), m.spinner.Tick)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading catalog…")
	}

	bar := m.renderFilterBar()
	barH := lipgloss.Height(bar)
	listH := m.height - barH
	if listH < 1 {
		listH = 1
	}
	m.list.SetSize(m.width, listH)
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.list.View())
}

// SelectedCourseID returns the current selection's course ID, if any.
func (m Model) SelectedCourseID() (int64, bool) {
	if item, ok := m.list.SelectedItem().(courseItem); ok {
		return item.course.ID, true
	}
	return 0, false
}

// SelectedCourseCode returns the current selection's course code.
func (m Model) SelectedCourseCode() string {
	if item, ok := m.list.SelectedItem().(courseItem); ok {
		return item.course.Code
	}
	return ""
}

// Searching reports whether the query box has focus. The app model checks
// this to avoid consuming global keys while the user types.
func (m Model) Searching() bool {
	return m.query.Focused()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.list.SetSize(m.width, m.height-2)
	m.query.Width = m.width / 3
}

func (m Model) renderFilterBar() string {
	chip := func(key, label, value string) string {
		if value == allOption {
			return theme.Muted.Render(fmt.Sprintf("%s:%s %s", key, label, value))
		}
		return theme.Hot.Render(fmt.Sprintf("%s:%s %s", key, label, value))
	}
	parts := []string{
		"/ " + m.query.View(),
		chip("a", "assess", m.filter.Assessment),
		chip("l", "level", m.filter.Level),
		chip("s", "area", m.filter.StudyArea),
		chip("m", "sem", m.filter.Semester),
		theme.Muted.Render("x:clear R:refetch"),
	}
	return strings.Join(parts, "  ") + "\n"
}

func (m Model) loadCoursesCmd() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		courses, err := m.port.ListCourses(context.Background(), filter)
		return CoursesLoadedMsg{Courses: courses, Err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		if err := m.port.Refresh(context.Background()); err != nil {
			return CoursesLoadedMsg{Err: err}
		}
		courses, err := m.port.ListCourses(context.Background(), filter)
		return CoursesLoadedMsg{Courses: courses, Err: err}
	}
}

func (m Model) loadOptionsCmd() tea.Cmd {
	return func() tea.Msg {
		assessments, err := m.port.AssessmentTypes(context.Background())
		if err != nil {
			return OptionsLoadedMsg{Err: err}
		}
		areas, err := m.port.StudyAreas(context.Background())
		if err != nil {
			return OptionsLoadedMsg{Err: err}
		}
		levels, err := m.port.ProgramLevels(context.Background())
		return OptionsLoadedMsg{Assessments: assessments, StudyAreas: areas, Levels: levels, Err: err}
	}
}

func optionCycle(opts []catalogdto.OptionOutput) []string {
	values := make([]string, 0, len(opts)+1)
	values = append(values, allOption)
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

func cycle(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
