package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/ui/components"
	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

// View implements screen.Screen.
func (s *Screen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseGenerating:
		body = s.renderLoading(width, "ESTABLISHING NEURAL LINK",
			fmt.Sprintf("REQUESTING %d-QUESTION BATTERY", s.count),
			generatingStatus(s.sim.Value()))
	case phaseActive:
		body = s.renderQuestion(width)
	case phaseAnalyzing:
		body = s.renderLoading(width, "PROCESSING PSYCHOLOGICAL PROFILE",
			fmt.Sprintf("TRANSCRIPT: %d RESPONSES", s.state.Completed()),
			analyzingStatus(s.sim.Value()))
	case phaseError:
		body = s.renderFault(width)
	}
	return components.ConsoleFrame(body, width, height)
}

func (s *Screen) renderLoading(width int, title, subtitle, status string) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(subtitle))
	b.WriteString("\n\n")

	bar := components.ProgressBar{Percent: s.sim.Value(), ShowPercent: true, Width: cw}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("> " + status))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("DO NOT DISCONNECT"))
	return b.String()
}

func (s *Screen) renderQuestion(width int) string {
	cw := components.ContentWidth(width)

	q, ok := s.state.Current()
	if !ok {
		return theme.Hint.Render("AWAITING NEXT QUESTION...")
	}

	meta := metaLine(
		"SUBJECT: "+s.operative,
		fmt.Sprintf("QUESTION %d/%d", s.state.Completed()+1, s.state.Total()),
		cw,
	)

	bar := components.ProgressBar{Percent: s.state.Progress(), ShowPercent: true, Width: cw}

	tag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("[" + strings.ToUpper(q.Dimension) + "]")

	card := theme.Card.Width(cw - 2).Render(tag + "\n\n" + s.picker.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta),
		bar.View(),
		"",
		card,
	)
}

func (s *Screen) renderFault(width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Negative.Render("/// SYSTEM FAULT ///"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render(s.errMsg))
	b.WriteString("\n\n")
	b.WriteString(s.ack.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("EVALUATION DATA FOR THIS RUN WAS DISCARDED"))
	return b.String()
}

// metaLine spreads left and right text across one row of the given width.
func metaLine(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// generatingStatus maps simulated progress to a themed status line.
func generatingStatus(v float64) string {
	switch {
	case v >= 100:
		return "LINK ESTABLISHED"
	case v >= 70:
		return "FINALIZING TRANSMISSION"
	case v >= 40:
		return "SYNTHESIZING SCENARIO BANK"
	case v >= 15:
		return "CALIBRATING QUESTION MATRIX"
	default:
		return "CONTACTING ANALYSIS CORE"
	}
}

func analyzingStatus(v float64) string {
	switch {
	case v >= 100:
		return "ANALYSIS COMPLETE"
	case v >= 70:
		return "COMPILING DOSSIER"
	case v >= 40:
		return "WEIGHING RESPONSE LATENCIES"
	case v >= 15:
		return "CROSS-REFERENCING BEHAVIORAL MARKERS"
	default:
		return "UPLOADING RESPONSE TRANSCRIPT"
	}
}
