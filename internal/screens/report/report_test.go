package report

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/router"
)

func testReport() *profile.Report {
	return &profile.Report{
		SubjectName:          "CIPHER9",
		Score:                74,
		DominantTraits:       []string{"METHODICAL", "GUARDED"},
		Strengths:            []string{"PATTERN RECOGNITION UNDER NOISE"},
		Weaknesses:           []string{"SLOW TO COMMIT"},
		BehavioralTendencies: []string{"RECHECKS COMPLETED WORK"},
		RiskIndicators:       []string{"WITHHOLDS INFORMATION"},
		ConfidenceScore:      66,
		GeneratedAt:          time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestReportScreen_Title(t *testing.T) {
	s := New(testReport())
	if s.Title() != "EVALUATION DOSSIER" {
		t.Errorf("Title = %q, want %q", s.Title(), "EVALUATION DOSSIER")
	}
}

func TestReportScreen_Operative(t *testing.T) {
	s := New(testReport())
	if s.Operative() != "CIPHER9" {
		t.Errorf("Operative = %q, want %q", s.Operative(), "CIPHER9")
	}
}

func TestReportScreen_DisplaysDossier(t *testing.T) {
	s := New(testReport())
	view := s.View(100, 40)

	for _, want := range []string{
		"PSYCHOLOGICAL DOSSIER: CIPHER9",
		"COMPOSITE SCORE  74 / 100",
		"DOMINANT TRAITS",
		"METHODICAL",
		"WITHHOLDS INFORMATION",
		"Mar 14, 2026",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestReportScreen_EmptyRiskSection(t *testing.T) {
	rep := testReport()
	rep.RiskIndicators = nil
	s := New(rep)

	if !strings.Contains(s.View(100, 40), "NONE DETECTED") {
		t.Error("expected explicit marker for an empty risk section")
	}
}

func TestReportScreen_Dismiss(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testReport())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatal("expected a command on dismiss")
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Fatal("expected PopScreenMsg on dismiss")
		}
	}
}

func TestReportScreen_KeyHints(t *testing.T) {
	s := New(testReport())
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
