package boot

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	totalDur     = 3500 * time.Millisecond
)

// bootLines appear one by one as the sequence plays.
var bootLines = []struct {
	at   time.Duration
	text string
}{
	{200 * time.Millisecond, "MINDPROBE KERNEL 4.2.1 ............ OK"},
	{600 * time.Millisecond, "NEURAL INTERFACE .................. OK"},
	{1100 * time.Millisecond, "PSYCH-EVAL MATRICES ............... OK"},
	{1600 * time.Millisecond, "COGNITIVE BASELINE ................ OK"},
	{2100 * time.Millisecond, "SECURE UPLINK ..................... OK"},
	{2600 * time.Millisecond, "CLEARANCE VERIFICATION ............ OK"},
	{3000 * time.Millisecond, "ALL SYSTEMS NOMINAL"},
}

type tickMsg time.Time

// Screen plays the boot sequence, then hands off to the login screen.
// Keystrokes are ignored for the full duration; the transition is
// automatic at 3.5 seconds.
type Screen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	fingerprint  string
	transitioned bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates a boot Screen that will transition to the screen produced
// by nextFactory.
func New(nextFactory func() screen.Screen) *Screen {
	return &Screen{
		nextFactory: nextFactory,
		fingerprint: strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")),
	}
}

func (b *Screen) Title() string {
	return ""
}

func (b *Screen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		b.elapsed += tickInterval
		b.tickCount++
		if b.elapsed >= totalDur {
			return b, b.transition()
		}
		return b, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// No input accepted during boot.
		return b, nil
	}

	return b, nil
}

func (b *Screen) transition() tea.Cmd {
	if b.transitioned {
		return nil
	}
	b.transitioned = true
	next := b.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (b *Screen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	lineStyle := lipgloss.NewStyle().Foreground(theme.Text)
	okStyle := lipgloss.NewStyle().Foreground(theme.Success)

	for _, l := range bootLines {
		if b.elapsed < l.at {
			break
		}
		rendered := lineStyle.Render(l.text)
		if strings.HasSuffix(l.text, " OK") {
			rendered = lineStyle.Render(strings.TrimSuffix(l.text, " OK")) + " " + okStyle.Render("OK")
		}
		sections = append(sections, rendered)
	}

	// Blinking cursor while the sequence is still playing.
	if b.elapsed < totalDur && b.tickCount%2 == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Primary).Render("█"))
	}

	sections = append(sections, "")
	fp := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("NODE " + b.fingerprint[:16])
	sections = append(sections, fp)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
