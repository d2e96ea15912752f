package leaderboard

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/store"
	"github.com/dsengupta/mindprobe/internal/ui/layout"
	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

type rosterLoadedMsg struct {
	Entries []store.LeaderboardEntry
	Err     error
}

// Screen displays the full operative roster: top 10 scores, best first.
type Screen struct {
	repo    store.LeaderboardRepo
	entries []store.LeaderboardEntry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a roster screen backed by the given repository.
func New(repo store.LeaderboardRepo) *Screen {
	return &Screen{repo: repo}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.repo.Load(context.Background())
		return rosterLoadedMsg{Entries: entries, Err: err}
	}
}

func (s *Screen) Title() string {
	return "OPERATIVE ROSTER"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "esc", Description: "back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nROSTER UNAVAILABLE: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nRETRIEVING ROSTER...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("\nHIGHEST EVALUATION SCORES ON RECORD\n"))
	b.WriteString("\n")

	header := fmt.Sprintf("  %-4s %-18s %6s   %s", "RANK", "CALLSIGN", "SCORE", "DATE")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 48)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("NO EVALUATIONS ON RECORD"))
		return b.String()
	}

	for i, e := range s.entries {
		line := fmt.Sprintf("  %-4d %-18s %6d   %s",
			i+1, e.Username, e.Score, e.Date.Format("Jan 02, 2006"))
		style := lipgloss.NewStyle().Foreground(rankColor(i))
		if i == 0 {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func rankColor(rank int) color.Color {
	switch rank {
	case 0:
		return theme.Accent
	case 1:
		return theme.Secondary
	case 2:
		return theme.Primary
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
