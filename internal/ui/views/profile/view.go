package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	programdomain "uniplan/internal/modules/program/domain"
	programdto "uniplan/internal/modules/program/dto"
	sessiondto "uniplan/internal/modules/session/dto"
	apperrors "uniplan/internal/platform/errors"
	"uniplan/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SessionPort interface {
	Me(ctx context.Context) (sessiondto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input sessiondto.UpdateProfileInput) (sessiondto.ProfileOutput, error)
	Status(ctx context.Context) sessiondto.StatusOutput
}

type ProgramPort interface {
	Search(ctx context.Context, input programdto.SearchInput) (programdto.SearchOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Profile sessiondto.ProfileOutput
	Err     error
}

type SavedMsg struct {
	Profile sessiondto.ProfileOutput
	Err     error
}

type searchResultMsg struct {
	out programdto.SearchOutput
	err error
}

// debounceMsg fires one debounce interval after a keystroke; only the message
// whose version matches the latest keystroke triggers a search.
type debounceMsg struct{ version int }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	session  SessionPort
	programs ProgramPort

	profile sessiondto.ProfileOutput
	loaded  bool
	lastErr string

	editing   bool
	level     string
	query     textinput.Model
	version   int
	searching bool
	results   []programdto.ProgramOutput
	cursor    int

	width  int
	height int
}

func New(session SessionPort, programs ProgramPort) Model {
	ti := textinput.New()
	ti.Placeholder = "type to search programs…"
	ti.CharLimit = 128
	return Model{session: session, programs: programs, query: ti, level: "UNDERGRAD"}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.query.Width = m.width / 2

	case LoadedMsg:
		if msg.Err != nil {
			// Signed-out is the normal cold-start state, not an error.
			if !errors.Is(msg.Err, apperrors.ErrNoSession) && !errors.Is(msg.Err, apperrors.ErrUnauthorized) {
				m.lastErr = msg.Err.Error()
			}
		} else {
			m.lastErr = ""
			m.profile = msg.Profile
			m.loaded = true
			if msg.Profile.ProgramLevel != "" {
				m.level = msg.Profile.ProgramLevel
			}
		}

	case SavedMsg:
		if msg.Err != nil {
			m.lastErr = "save: " + msg.Err.Error()
		} else {
			m.lastErr = ""
			m.profile = msg.Profile
			m.editing = false
			m.query.SetValue("")
			m.query.Blur()
			m.results = nil
		}

	case debounceMsg:
		// A newer keystroke has superseded this timer.
		if msg.version != m.version {
			return m, nil
		}
		if strings.TrimSpace(m.query.Value()) == "" {
			m.results = nil
			return m, nil
		}
		m.searching = true
		cmds = append(cmds, m.searchCmd())

	case searchResultMsg:
		m.searching = false
		if msg.err != nil {
			m.lastErr = "search: " + msg.err.Error()
			return m, nil
		}
		if msg.out.Stale {
			return m, nil
		}
		m.lastErr = ""
		m.results = msg.out.Programs
		m.cursor = 0

	case tea.KeyMsg:
		if !m.editing {
			if msg.String() == "e" && m.session.Status(context.Background()).Authenticated {
				m.editing = true
				m.results = nil
				cmds = append(cmds, m.query.Focus())
			}
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "esc":
			m.editing = false
			m.query.SetValue("")
			m.query.Blur()
			m.results = nil
		case "ctrl+l":
			if m.level == "UNDERGRAD" {
				m.level = "POSTGRAD"
			} else {
				m.level = "UNDERGRAD"
			}
			m.version++
			cmds = append(cmds, m.debounceCmd())
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.results) {
				cmds = append(cmds, m.saveCmd(m.results[m.cursor]))
			}
		default:
			before := m.query.Value()
			var cmd tea.Cmd
			m.query, cmd = m.query.Update(msg)
			cmds = append(cmds, cmd)
			if m.query.Value() != before {
				m.version++
				cmds = append(cmds, m.debounceCmd())
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Profile") + "\n")
	if m.lastErr != "" {
		sb.WriteString(theme.Bad.Render(m.lastErr) + "\n")
	}
	sb.WriteString("\n")

	if !m.loaded {
		sb.WriteString(theme.Muted.Render("Not signed in. Run `uniplan login` and restart.") + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("user:     ") + m.profile.Username + "\n")
		sb.WriteString(theme.Muted.Render("email:    ") + m.profile.Email + "\n")
		sb.WriteString(theme.Muted.Render("program:  ") + m.profile.Program + "\n")
		sb.WriteString(theme.Muted.Render("level:    ") + m.profile.ProgramLevel + "\n")
		sb.WriteString(theme.Muted.Render("intake:   ") + m.profile.YearIntake + "\n")
	}

	sb.WriteString("\n")
	if m.editing {
		sb.WriteString(theme.Hot.Render("Change program") + "  ")
		sb.WriteString(theme.Muted.Render("level: ") + m.level + theme.Muted.Render("  (ctrl+l to toggle)") + "\n")
		sb.WriteString("  " + m.query.View() + "\n")
		if m.searching {
			sb.WriteString(theme.Muted.Render("  searching…") + "\n")
		}
		for i, p := range m.results {
			if i == m.cursor {
				sb.WriteString(theme.Hot.Render("  > "+p.Label) + "\n")
			} else {
				sb.WriteString("    " + p.Label + "\n")
			}
		}
		sb.WriteString(theme.Muted.Render("  enter: apply  esc: cancel"))
	} else if m.loaded {
		sb.WriteString(theme.Muted.Render("e: change program"))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - 2).
		Height(m.height - 2).
		Padding(1).
		Render(sb.String())
}

// Editing reports whether the program search form is capturing input.
func (m Model) Editing() bool { return m.editing }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) debounceCmd() tea.Cmd {
	version := m.version
	return tea.Tick(programdomain.DebounceInterval, func(time.Time) tea.Msg {
		return debounceMsg{version: version}
	})
}

func (m Model) searchCmd() tea.Cmd {
	input := programdto.SearchInput{Level: m.level, Query: strings.TrimSpace(m.query.Value())}
	return func() tea.Msg {
		out, err := m.programs.Search(context.Background(), input)
		return searchResultMsg{out: out, err: err}
	}
}

func (m Model) saveCmd(program programdto.ProgramOutput) tea.Cmd {
	name := program.Label
	level := m.level
	return func() tea.Msg {
		profile, err := m.session.UpdateProfile(context.Background(), sessiondto.UpdateProfileInput{
			Program:      &name,
			ProgramLevel: &level,
		})
		return SavedMsg{Profile: profile, Err: err}
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.session.Me(context.Background())
		return LoadedMsg{Profile: profile, Err: err}
	}
}
