package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/ui/components"
	"github.com/dsengupta/mindprobe/internal/ui/layout"
	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

// minCallsign is the shortest accepted operative name.
const minCallsign = 3

// Screen captures the operative callsign. Input is normalized to upper
// case on every keystroke. Submission is guarded: shorter names leave the
// authenticate button disabled and enter does nothing, with no error
// shown.
type Screen struct {
	input       components.TextInput
	button      components.Button
	menuFactory func(operative string) screen.Screen
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a login Screen that hands the accepted callsign to
// menuFactory.
func New(menuFactory func(operative string) screen.Screen) *Screen {
	l := &Screen{
		input:       components.NewTextInput("CALLSIGN", true, 16),
		menuFactory: menuFactory,
	}
	l.button = components.NewButton("AUTHENTICATE", false, l.authenticate)
	return l
}

func (l *Screen) Title() string {
	return "AUTHENTICATION"
}

func (l *Screen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *Screen) valid() bool {
	return len(l.input.Value()) >= minCallsign
}

func (l *Screen) authenticate() tea.Cmd {
	next := l.menuFactory(l.input.Value())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (l *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		l.button.Active = l.valid()
		var cmd tea.Cmd
		l.button, cmd = l.button.Update(msg)
		return l, cmd
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	l.button.Active = l.valid()

	var sections []string

	sections = append(sections, theme.Subtitle.Render("IDENTIFY YOURSELF"))
	sections = append(sections, "")
	sections = append(sections, components.ConsoleCard(l.input.View(), cw))
	sections = append(sections, "")
	sections = append(sections, l.button.View())
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("CALLSIGN REQUIRES 3+ CHARACTERS"))

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "authenticate"},
	}
}
