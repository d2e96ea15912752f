package login

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "menu" }
func (s *stubScreen) Title() string                           { return "Menu" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestLogin() (*Screen, *string) {
	var got string
	factory := func(operative string) screen.Screen {
		got = operative
		return &stubScreen{}
	}
	return New(factory), &got
}

func typeName(l *Screen, name string) {
	for _, r := range name {
		l.Update(keyPress(r))
	}
}

func TestUppercaseNormalization(t *testing.T) {
	l, _ := newTestLogin()

	typeName(l, "vector")
	if got := l.input.Value(); got != "VECTOR" {
		t.Errorf("expected VECTOR, got %q", got)
	}
}

func TestShortNameSilentlyIgnored(t *testing.T) {
	for _, name := range []string{"", "A", "AB"} {
		l, got := newTestLogin()
		typeName(l, name)

		_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd != nil {
			t.Errorf("name %q: expected enter to be ignored", name)
		}
		if *got != "" {
			t.Errorf("name %q: factory should not be called", name)
		}
	}
}

func TestValidSubmitReplaces(t *testing.T) {
	l, got := newTestLogin()
	typeName(l, "abc")

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command for 3-char name")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *got != "ABC" {
		t.Errorf("factory should receive the normalized callsign, got %q", *got)
	}
}

func TestViewShowsPrompt(t *testing.T) {
	l, _ := newTestLogin()
	view := l.View(80, 24)
	if !strings.Contains(view, "IDENTIFY YOURSELF") {
		t.Error("expected prompt in view")
	}
}
