package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uniplan/internal/ui/theme"
)

// PickerSubmitMsg is emitted when the user confirms an option.
type PickerSubmitMsg struct{ Option string }

// PickerCancelMsg is emitted when the user presses esc.
type PickerCancelMsg struct{}

var (
	pickerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	pickerHint = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Picker is a modal single-choice overlay. The app model opens it to choose a
// semester when adding or moving a planned course; input is captured entirely
// by the picker while it is visible.
type Picker struct {
	title   string
	options []string
	cursor  int
	visible bool
	width   int
}

// Open shows the picker over the given options with the cursor reset.
func (p *Picker) Open(title string, options []string) {
	p.title = title
	p.options = options
	p.cursor = 0
	p.visible = true
}

// Visible reports whether the picker is currently shown.
func (p Picker) Visible() bool { return p.visible }

// SetWidth sets the render width for the overlay.
func (p *Picker) SetWidth(w int) { p.width = w }

func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.visible = false
			return p, func() tea.Msg { return PickerCancelMsg{} }
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.options)-1 {
				p.cursor++
			}
		case "enter":
			if len(p.options) == 0 {
				return p, nil
			}
			choice := p.options[p.cursor]
			p.visible = false
			return p, func() tea.Msg { return PickerSubmitMsg{Option: choice} }
		}
	}
	return p, nil
}

func (p Picker) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.title) + "\n\n")
	for i, opt := range p.options {
		if i == p.cursor {
			sb.WriteString(theme.Hot.Render("> "+opt) + "\n")
		} else {
			sb.WriteString("  " + opt + "\n")
		}
	}
	sb.WriteString("\n" + pickerHint.Render("enter: choose  esc: cancel"))

	w := p.width
	if w < 20 {
		w = 40
	}
	return pickerStyle.Width(w - 2).Render(sb.String())
}
