package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "uniplan/internal/modules/catalog/dto"
	plannerdto "uniplan/internal/modules/planner/dto"
	programdto "uniplan/internal/modules/program/dto"
	reviewdto "uniplan/internal/modules/review/dto"
	sessiondto "uniplan/internal/modules/session/dto"
	"uniplan/internal/ui/components"
	"uniplan/internal/ui/theme"
	catalogview "uniplan/internal/ui/views/catalog"
	courseview "uniplan/internal/ui/views/course"
	plannerview "uniplan/internal/ui/views/planner"
	profileview "uniplan/internal/ui/views/profile"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	Me(ctx context.Context) (sessiondto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input sessiondto.UpdateProfileInput) (sessiondto.ProfileOutput, error)
	Status(ctx context.Context) sessiondto.StatusOutput
}

type catalogPort interface {
	ListCourses(ctx context.Context, filter catalogdto.FilterInput) ([]catalogdto.CourseOutput, error)
	Refresh(ctx context.Context) error
	GetCourse(ctx context.Context, id int64) (catalogdto.CourseDetailOutput, error)
	AssessmentTypes(ctx context.Context) ([]catalogdto.OptionOutput, error)
	StudyAreas(ctx context.Context) ([]catalogdto.OptionOutput, error)
	ProgramLevels(ctx context.Context) ([]catalogdto.OptionOutput, error)
}

type plannerPort interface {
	Load(ctx context.Context) (plannerdto.PlanOutput, error)
	Plan(ctx context.Context) plannerdto.PlanOutput
	RequestAdd(ctx context.Context, courseID int64) (plannerdto.PendingOutput, error)
	ConfirmAdd(ctx context.Context, semester string) (plannerdto.PlanOutput, error)
	CancelAdd(ctx context.Context)
	Move(ctx context.Context, courseID int64, semester string) (plannerdto.PlanOutput, error)
	Remove(ctx context.Context, courseID int64) (plannerdto.PlanOutput, error)
	AddSemester(ctx context.Context) (plannerdto.PlanOutput, error)
	DeleteSemester(ctx context.Context) (plannerdto.PlanOutput, error)
}

type reviewPort interface {
	List(ctx context.Context, courseID int64) ([]reviewdto.ReviewOutput, error)
	Submit(ctx context.Context, input reviewdto.SubmitInput) (reviewdto.SubmitOutput, error)
}

type programPort interface {
	Search(ctx context.Context, input programdto.SearchInput) (programdto.SearchOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCatalog tabID = iota
	tabPlanner
	tabCourse
	tabProfile
	tabCount
)

var tabLabels = [tabCount]string{
	"Catalog", "Planner", "Course", "Profile",
}

// ─── picker dispatch ─────────────────────────────────────────────────────────

type pickerMode int

const (
	pickerIdle pickerMode = iota
	pickerAdd
	pickerMove
)

// ─── async messages ──────────────────────────────────────────────────────────

type planLoadedMsg struct {
	plan plannerdto.PlanOutput
	err  error
}

type addRequestedMsg struct {
	pending plannerdto.PendingOutput
	err     error
}

type addConfirmedMsg struct {
	plan plannerdto.PlanOutput
	err  error
}

type movedMsg struct {
	plan plannerdto.PlanOutput
	err  error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	Quit   key.Binding
	Enter  key.Binding
	AddKey key.Binding
	Search key.Binding
	Filter key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open course")),
		AddKey: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "plan course")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter: key.NewBinding(key.WithKeys("a", "l", "s", "m"), key.WithHelp("a/l/s/m", "cycle filters")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.AddKey},
		{k.Search, k.Filter},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the semester
// picker overlay for the add/move flows, the help overlay, and the status
// bar. All business logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	planner plannerPort
	session sessionPort

	catalogView catalogview.Model
	plannerView plannerview.Model
	courseView  courseview.Model
	profileView profileview.Model

	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	picker        components.Picker
	pickMode      pickerMode
	moveCourseID  int64
	authenticated bool
	status        string
	width         int
	height        int
}

func NewModel(
	session sessionPort,
	catalog catalogPort,
	planner plannerPort,
	review reviewPort,
	program programPort,
) Model {
	return Model{
		planner:       planner,
		session:       session,
		catalogView:   catalogview.New(catalogPortBridge{p: catalog}),
		plannerView:   plannerview.New(plannerPortBridge{p: planner}),
		courseView:    courseview.New(coursePortBridge{p: catalog}, review),
		profileView:   profileview.New(session, program),
		activeTab:     tabCatalog,
		keys:          defaultKeys(),
		help:          help.New(),
		authenticated: session.Status(context.Background()).Authenticated,
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.catalogView.Init(),
		m.profileView.Init(),
		m.loadPlanCmd(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The picker intercepts all input while open.
	if m.picker.Visible() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetWidth(min(m.width-4, 48))
		m.help.Width = m.width
		m.propagateSize()

	case planLoadedMsg:
		if msg.err != nil {
			m.status = "plan load: " + msg.err.Error()
		} else {
			m.status = "plan loaded"
		}
		var cmd tea.Cmd
		m.plannerView, cmd = m.plannerView.Update(plannerview.PlanLoadedMsg{Plan: msg.plan, Err: msg.err})
		return m, cmd

	case addRequestedMsg:
		if msg.err != nil {
			m.status = "add: " + msg.err.Error()
			return m, nil
		}
		m.pickMode = pickerAdd
		m.picker.Open("Add "+msg.pending.Code+" to…", m.semesterOptions())
		return m, nil

	case addConfirmedMsg:
		if msg.err != nil {
			m.status = "add failed: " + msg.err.Error()
			m.planner.CancelAdd(context.Background())
			return m, nil
		}
		m.status = "course planned"
		m.activeTab = tabPlanner
		var cmd tea.Cmd
		m.plannerView, cmd = m.plannerView.Update(plannerview.PlanLoadedMsg{Plan: msg.plan})
		return m, cmd

	case movedMsg:
		if msg.err != nil {
			m.status = "move: " + msg.err.Error()
		} else {
			m.status = "course moved"
		}
		var cmd tea.Cmd
		m.plannerView, cmd = m.plannerView.Update(plannerview.PlanLoadedMsg{Plan: msg.plan, Err: msg.err})
		return m, cmd

	case components.PickerSubmitMsg:
		mode := m.pickMode
		m.pickMode = pickerIdle
		switch mode {
		case pickerAdd:
			return m, m.confirmAddCmd(msg.Option)
		case pickerMove:
			return m, m.moveCmd(m.moveCourseID, msg.Option)
		}
		return m, nil

	case components.PickerCancelMsg:
		if m.pickMode == pickerAdd {
			m.planner.CancelAdd(context.Background())
		}
		m.pickMode = pickerIdle
		m.status = "cancelled"
		return m, nil

	// MoveRequestMsg is produced by the planner view but handled here so the
	// picker overlay can take over the screen.
	case plannerview.MoveRequestMsg:
		m.pickMode = pickerMove
		m.moveCourseID = msg.CourseID
		m.picker.Open("Move "+msg.Code+" to…", m.semesterOptions())
		return m, nil

	case profileview.SavedMsg:
		if msg.Err == nil {
			m.status = "profile updated: " + msg.Profile.Program
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view while it is capturing free text.
		if m.subViewCapturing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case "enter":
			if m.activeTab == tabCatalog {
				if id, ok := m.catalogView.SelectedCourseID(); ok {
					m.activeTab = tabCourse
					cmds = append(cmds, m.courseView.Open(id))
					return m, tea.Batch(cmds...)
				}
			}
		case "p":
			if m.activeTab == tabCatalog {
				if id, ok := m.catalogView.SelectedCourseID(); ok {
					if !m.authenticated {
						m.status = "sign in to plan courses (uniplan login)"
						return m, nil
					}
					cmds = append(cmds, m.requestAddCmd(id))
					return m, tea.Batch(cmds...)
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabCatalog:
		m.catalogView, tabCmd = m.catalogView.Update(msg)
	case tabPlanner:
		m.plannerView, tabCmd = m.plannerView.Update(msg)
	case tabCourse:
		m.courseView, tabCmd = m.courseView.Update(msg)
	case tabProfile:
		m.profileView, tabCmd = m.profileView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.picker.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.picker.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCatalog:
		return m.catalogView.View()
	case tabPlanner:
		return m.plannerView.View()
	case tabCourse:
		return m.courseView.View()
	case tabProfile:
		return m.profileView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "uniplan  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.authenticated {
		left = theme.Good.Render("● signed in") + "  " + left
	} else {
		left = theme.Muted.Render("○ signed out") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is consuming free-form
// typing, in which case global key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabCatalog:
		return m.catalogView.Searching()
	case tabCourse:
		return m.courseView.Composing()
	case tabProfile:
		return m.profileView.Editing()
	}
	return false
}

func (m Model) semesterOptions() []string {
	options := m.plannerView.Semesters()
	if len(options) == 0 {
		options = m.planner.Plan(context.Background()).Semesters
	}
	return options
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.catalogView, _ = m.catalogView.Update(sz)
	m.plannerView, _ = m.plannerView.Update(sz)
	m.courseView, _ = m.courseView.Update(sz)
	m.profileView, _ = m.profileView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadPlanCmd() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.planner.Load(context.Background())
		return planLoadedMsg{plan: plan, err: err}
	}
}

func (m Model) requestAddCmd(courseID int64) tea.Cmd {
	return func() tea.Msg {
		pending, err := m.planner.RequestAdd(context.Background(), courseID)
		return addRequestedMsg{pending: pending, err: err}
	}
}

func (m Model) confirmAddCmd(semester string) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.planner.ConfirmAdd(context.Background(), semester)
		return addConfirmedMsg{plan: plan, err: err}
	}
}

func (m Model) moveCmd(courseID int64, semester string) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.planner.Move(context.Background(), courseID, semester)
		return movedMsg{plan: plan, err: err}
	}
}

// ─── port bridges ────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed
// by a specific sub-view, keeping view packages free of knowledge about the
// wider port surface.

type catalogPortBridge struct{ p catalogPort }

func (b catalogPortBridge) ListCourses(ctx context.Context, filter catalogdto.FilterInput) ([]catalogdto.CourseOutput, error) {
	return b.p.ListCourses(ctx, filter)
}
func (b catalogPortBridge) Refresh(ctx context.Context) error {
	return b.p.Refresh(ctx)
}
func (b catalogPortBridge) AssessmentTypes(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return b.p.AssessmentTypes(ctx)
}
func (b catalogPortBridge) StudyAreas(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return b.p.StudyAreas(ctx)
}
func (b catalogPortBridge) ProgramLevels(ctx context.Context) ([]catalogdto.OptionOutput, error) {
	return b.p.ProgramLevels(ctx)
}

type coursePortBridge struct{ p catalogPort }

func (b coursePortBridge) GetCourse(ctx context.Context, id int64) (catalogdto.CourseDetailOutput, error) {
	return b.p.GetCourse(ctx, id)
}

type plannerPortBridge struct{ p plannerPort }

func (b plannerPortBridge) Plan(ctx context.Context) plannerdto.PlanOutput {
	return b.p.Plan(ctx)
}
func (b plannerPortBridge) Remove(ctx context.Context, courseID int64) (plannerdto.PlanOutput, error) {
	return b.p.Remove(ctx, courseID)
}
func (b plannerPortBridge) AddSemester(ctx context.Context) (plannerdto.PlanOutput, error) {
	return b.p.AddSemester(ctx)
}
func (b plannerPortBridge) DeleteSemester(ctx context.Context) (plannerdto.PlanOutput, error) {
	return b.p.DeleteSemester(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
