package menu

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/questiongen"
	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/screens/assessment"
	"github.com/dsengupta/mindprobe/internal/screens/leaderboard"
	"github.com/dsengupta/mindprobe/internal/store"
	"github.com/dsengupta/mindprobe/internal/ui/components"
	"github.com/dsengupta/mindprobe/internal/ui/layout"
	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

// rosterLoadedMsg carries the leaderboard preview. Sent on every Init so
// the preview refreshes when the menu is revealed again after a run.
type rosterLoadedMsg struct {
	entries []store.LeaderboardEntry
}

// Screen is the command menu: assessment depth selection, roster access,
// and the top-operative preview.
type Screen struct {
	operative  string
	generator  questiongen.Generator
	analyzer   profile.Analyzer
	lbRepo     store.LeaderboardRepo
	menu       components.Menu
	topEntries []store.LeaderboardEntry
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.OperativeProvider = (*Screen)(nil)

// New creates the command menu for an authenticated operative.
func New(operative string, generator questiongen.Generator, analyzer profile.Analyzer, lbRepo store.LeaderboardRepo) *Screen {
	s := &Screen{
		operative: operative,
		generator: generator,
		analyzer:  analyzer,
		lbRepo:    lbRepo,
	}

	items := []components.MenuItem{
		{Label: "RAPID SCAN        20 QUESTIONS", Action: s.launch(20)},
		{Label: "DEEP PROBE        50 QUESTIONS", Action: s.launch(50)},
		{Label: "FULL SPECTRUM    100 QUESTIONS", Action: s.launch(100)},
		{Label: "OPERATIVE ROSTER", Action: s.openRoster, Disabled: lbRepo == nil},
		{Label: "TERMINATE SESSION", Action: func() tea.Cmd { return tea.Quit }},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) launch(count int) func() tea.Cmd {
	return func() tea.Cmd {
		next := assessment.New(s.operative, count, s.generator, s.analyzer, s.lbRepo)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}
}

func (s *Screen) openRoster() tea.Cmd {
	next := leaderboard.New(s.lbRepo)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *Screen) Title() string {
	return "COMMAND MENU"
}

// Operative identifies the authenticated subject for the header.
func (s *Screen) Operative() string {
	return s.operative
}

func (s *Screen) Init() tea.Cmd {
	if s.lbRepo == nil {
		return nil
	}
	repo := s.lbRepo
	return func() tea.Msg {
		entries, err := repo.Load(context.Background())
		if err != nil {
			return rosterLoadedMsg{}
		}
		return rosterLoadedMsg{entries: entries}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		s.topEntries = msg.entries
		if len(s.topEntries) > 3 {
			s.topEntries = s.topEntries[:3]
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(compact))

	if !compact && len(s.topEntries) > 0 {
		sections = append(sections, components.ConsoleCard(renderRoster(s.topEntries, cw), cw))
	}

	sections = append(sections, components.ConsoleCard(s.menu.View(), cw))

	content := strings.Join(sections, "\n\n")

	return components.ConsoleFrame(content, width, height)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
	}
}

func renderTitle(compact bool) string {
	title := theme.Title.Render("SELECT ASSESSMENT DEPTH")
	if compact {
		return title
	}
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("DEEPER SCANS YIELD HIGHER-CONFIDENCE DOSSIERS")
	return title + "\n" + sub
}

// renderRoster formats the top-3 preview with dotted leaders.
func renderRoster(entries []store.LeaderboardEntry, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("TOP OPERATIVES"))
	b.WriteString("\n")

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dotStyle := lipgloss.NewStyle().Foreground(theme.Border)

	lineWidth := cw - 8
	if lineWidth < 20 {
		lineWidth = 20
	}

	for i, e := range entries {
		dots := lineWidth - len(e.Username) - 9
		if dots < 2 {
			dots = 2
		}
		fmt.Fprintf(&b, "\n%d. %s %s %s",
			i+1,
			nameStyle.Render(e.Username),
			dotStyle.Render(strings.Repeat(".", dots)),
			scoreStyle.Render(fmt.Sprintf("%3d", e.Score)),
		)
	}
	return b.String()
}
