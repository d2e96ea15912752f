package report

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/ui/components"
	"github.com/dsengupta/mindprobe/internal/ui/layout"
	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

// Screen displays the finished personality dossier.
type Screen struct {
	report *profile.Report
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.OperativeProvider = (*Screen)(nil)

// New creates a report screen for the given dossier.
func New(report *profile.Report) *Screen {
	return &Screen{report: report}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "EVALUATION DOSSIER"
}

// Operative implements screen.OperativeProvider.
func (s *Screen) Operative() string {
	if s.report == nil {
		return ""
	}
	return s.report.SubjectName
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "return to menu"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	rep := s.report
	if rep == nil {
		return ""
	}

	cw := min(width-8, 64)

	var b strings.Builder

	// Title block.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("PSYCHOLOGICAL DOSSIER: "+rep.SubjectName)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("EVALUATED "+rep.GeneratedAt.Format("Jan 02, 2006 15:04 MST"))))
	b.WriteString("\n\n")

	// Composite score and analysis confidence.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(scoreColor(rep.Score)).Bold(true).
			Render(fmt.Sprintf("COMPOSITE SCORE  %d / 100", rep.Score))))
	b.WriteString("\n")
	confidence := components.ProgressBar{
		Label:       "CONFIDENCE",
		Percent:     float64(rep.ConfidenceScore),
		ShowPercent: true,
		Width:       cw,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, confidence.View()))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", cw))

	sections := []struct {
		title string
		items []string
		color color.Color
	}{
		{"DOMINANT TRAITS", rep.DominantTraits, theme.Secondary},
		{"STRENGTHS", rep.Strengths, theme.Success},
		{"WEAKNESSES", rep.Weaknesses, theme.Accent},
		{"BEHAVIORAL TENDENCIES", rep.BehavioralTendencies, theme.Text},
		{"RISK INDICATORS", rep.RiskIndicators, theme.Error},
	}

	for _, sec := range sections {
		if len(sec.items) == 0 && sec.title != "RISK INDICATORS" {
			continue
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(sec.title)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		if len(sec.items) == 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("NONE DETECTED")))
			b.WriteString("\n")
		}
		for _, item := range sec.items {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(sec.color).Render("▪ "+item)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ConsoleButton("RETURN TO COMMAND MENU", true, 30)))

	return b.String()
}

// scoreColor maps a composite score to its alert band.
func scoreColor(score int) color.Color {
	switch {
	case score >= 75:
		return theme.Success
	case score >= 45:
		return theme.Accent
	default:
		return theme.Error
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
