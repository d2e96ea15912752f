package leaderboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/store"
)

// fakeRepo implements store.LeaderboardRepo for testing.
type fakeRepo struct {
	entries []store.LeaderboardEntry
	err     error
}

func (f *fakeRepo) Load(context.Context) ([]store.LeaderboardEntry, error) {
	return f.entries, f.err
}

func (f *fakeRepo) Record(_ context.Context, username string, score int) ([]store.LeaderboardEntry, error) {
	f.entries = append(f.entries, store.LeaderboardEntry{Username: username, Score: score})
	return f.entries, nil
}

func seedEntries() []store.LeaderboardEntry {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return []store.LeaderboardEntry{
		{ID: "a", Username: "GHOST_01", Score: 98, Date: now},
		{ID: "b", Username: "NEXUS", Score: 92, Date: now},
		{ID: "c", Username: "CIPHER", Score: 85, Date: now},
	}
}

func TestInitLoadsRoster(t *testing.T) {
	s := New(&fakeRepo{entries: seedEntries()})

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	msg := cmd()
	loaded, ok := msg.(rosterLoadedMsg)
	if !ok {
		t.Fatalf("expected rosterLoadedMsg, got %T", msg)
	}
	if len(loaded.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(loaded.Entries))
	}

	s.Update(msg)
	view := s.View(80, 24)
	for _, name := range []string{"GHOST_01", "NEXUS", "CIPHER"} {
		if !strings.Contains(view, name) {
			t.Errorf("expected %s in view", name)
		}
	}
}

func TestLoadErrorShown(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("disk failure")})

	msg := s.Init()()
	s.Update(msg)

	view := s.View(80, 24)
	if !strings.Contains(view, "ROSTER UNAVAILABLE: disk failure") {
		t.Errorf("expected error in view, got:\n%s", view)
	}
}

func TestLoadingStateBeforeData(t *testing.T) {
	s := New(&fakeRepo{entries: seedEntries()})
	view := s.View(80, 24)
	if !strings.Contains(view, "RETRIEVING ROSTER") {
		t.Error("expected loading indicator before data arrives")
	}
}

func TestEscPops(t *testing.T) {
	s := New(&fakeRepo{})
	s.Update(s.Init()())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEmptyRoster(t *testing.T) {
	s := New(&fakeRepo{})
	s.Update(s.Init()())

	view := s.View(80, 24)
	if !strings.Contains(view, "NO EVALUATIONS ON RECORD") {
		t.Error("expected empty-roster message")
	}
}
