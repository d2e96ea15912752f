package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

// OptionPicker presents one assessment question with its answer options.
// There is no right answer; submitting locks the chosen option until the
// caller advances to the next question.
type OptionPicker struct {
	Question    string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewOptionPicker creates a picker for the given question.
func NewOptionPicker(question string, options []string) OptionPicker {
	return OptionPicker{
		Question:    question,
		Options:     options,
		Selected:    0,
		Submitted:   false,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Submitted {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(p.Options) {
			p.Selected = idx
			p.Submitted = true
			p.ChosenIndex = idx
		}
	case "enter":
		p.Submitted = true
		p.ChosenIndex = p.Selected
	}

	return p, nil
}

// View renders the question and its options.
func (p OptionPicker) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(p.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range p.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == p.Selected && !p.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case p.Submitted && i == p.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case p.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == p.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Choice returns the submitted option text, or "" when nothing has been
// submitted yet.
func (p OptionPicker) Choice() string {
	if !p.Submitted || p.ChosenIndex < 0 || p.ChosenIndex >= len(p.Options) {
		return ""
	}
	return p.Options[p.ChosenIndex]
}
