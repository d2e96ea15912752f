package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/questiongen"
	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screens/report"
	"github.com/dsengupta/mindprobe/internal/session"
	"github.com/dsengupta/mindprobe/internal/store"
)

type mockGenerator struct {
	questions []questiongen.Question
	err       error
	gotCount  int
}

func (m *mockGenerator) Generate(_ context.Context, count int) ([]questiongen.Question, error) {
	m.gotCount = count
	if m.err != nil {
		return nil, m.err
	}
	return m.questions, nil
}

type mockAnalyzer struct {
	report     *profile.Report
	err        error
	gotAnswers []session.Answer
	gotSubject string
}

func (m *mockAnalyzer) Analyze(_ context.Context, answers []session.Answer, subjectName string) (*profile.Report, error) {
	m.gotAnswers = answers
	m.gotSubject = subjectName
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

type mockRepo struct {
	recordedName  string
	recordedScore int
	records       int
}

func (m *mockRepo) Load(context.Context) ([]store.LeaderboardEntry, error) {
	return nil, nil
}

func (m *mockRepo) Record(_ context.Context, username string, score int) ([]store.LeaderboardEntry, error) {
	m.records++
	m.recordedName = username
	m.recordedScore = score
	return nil, nil
}

func sampleQuestions(n int) []questiongen.Question {
	qs := make([]questiongen.Question, n)
	for i := range qs {
		qs[i] = questiongen.Question{
			ID:        i + 1,
			Text:      fmt.Sprintf("Scenario %d?", i+1),
			Dimension: "risk tolerance",
			Options:   []string{"Freeze", "Act", "Delegate", "Withdraw"},
		}
	}
	return qs
}

func sampleReport(score int) *profile.Report {
	return &profile.Report{
		SubjectName:          "VECTOR",
		Score:                score,
		DominantTraits:       []string{"DECISIVE"},
		Strengths:            []string{"CALM UNDER LOAD"},
		Weaknesses:           []string{"IMPATIENT"},
		BehavioralTendencies: []string{"ACTS FIRST"},
		ConfidenceScore:      61,
		GeneratedAt:          time.Now().UTC(),
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// enterActive drives the screen through generation into the answer loop.
func enterActive(t *testing.T, s *Screen) {
	t.Helper()

	_, cmd := s.Update(s.fetchQuestions()())
	if cmd == nil {
		t.Fatal("expected settle command after questions arrive")
	}
	if s.phase != phaseGenerating {
		t.Fatalf("expected settle hold in generating phase, got %d", s.phase)
	}
	if got := s.sim.Value(); got != 100 {
		t.Fatalf("expected progress forced to 100, got %.1f", got)
	}

	s.Update(settleMsg{epoch: s.epoch})
	if s.phase != phaseActive {
		t.Fatalf("expected active phase after settle, got %d", s.phase)
	}
}

// enterAnalyzing answers every question with option 1.
func enterAnalyzing(t *testing.T, s *Screen) {
	t.Helper()

	enterActive(t, s)
	for !s.state.Finished() {
		s.Update(keyPress('1'))
	}
	if s.phase != phaseAnalyzing {
		t.Fatalf("expected analyzing phase after final answer, got %d", s.phase)
	}
}

func TestGeneratorReceivesCount(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(20)}
	s := New("VECTOR", 20, gen, &mockAnalyzer{}, &mockRepo{})

	s.fetchQuestions()()
	if gen.gotCount != 20 {
		t.Errorf("expected generator called with 20, got %d", gen.gotCount)
	}
}

func TestGenerationFailureShowsCause(t *testing.T) {
	gen := &mockGenerator{err: errors.New("boom")}
	s := New("VECTOR", 20, gen, &mockAnalyzer{}, &mockRepo{})

	s.Update(s.fetchQuestions()())
	if s.phase != phaseError {
		t.Fatalf("expected error phase, got %d", s.phase)
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "CONNECTION FAILED: boom") {
		t.Error("expected the gateway cause in the fault panel")
	}
}

func TestGenerationFailureFallbackMessage(t *testing.T) {
	gen := &mockGenerator{err: errors.New("")}
	s := New("VECTOR", 20, gen, &mockAnalyzer{}, &mockRepo{})

	s.Update(s.fetchQuestions()())
	view := s.View(100, 40)
	if !strings.Contains(view, "CONNECTION FAILED: UNKNOWN ERROR") {
		t.Error("expected fallback message for an empty cause")
	}
}

func TestSettleEntersAssessment(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(3)}
	s := New("VECTOR", 3, gen, &mockAnalyzer{}, &mockRepo{})

	enterActive(t, s)

	view := s.View(100, 40)
	if !strings.Contains(view, "QUESTION 1/3") {
		t.Error("expected first question counter in view")
	}
	if !strings.Contains(view, "Scenario 1?") {
		t.Error("expected first question text in view")
	}
}

func TestDigitAnswerAdvances(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(3)}
	s := New("VECTOR", 3, gen, &mockAnalyzer{}, &mockRepo{})
	enterActive(t, s)

	s.Update(keyPress('2'))

	answers := s.state.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected 1 recorded answer, got %d", len(answers))
	}
	if answers[0].QuestionID != 1 || answers[0].SelectedOption != "Act" {
		t.Errorf("unexpected answer: %+v", answers[0])
	}
	if !strings.Contains(s.View(100, 40), "QUESTION 2/3") {
		t.Error("expected advance to the second question")
	}
}

func TestArrowThenEnterSelects(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	s := New("VECTOR", 2, gen, &mockAnalyzer{}, &mockRepo{})
	enterActive(t, s)

	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	answers := s.state.Answers()
	if len(answers) != 1 || answers[0].SelectedOption != "Act" {
		t.Fatalf("expected second option recorded, got %+v", answers)
	}
}

func TestFinalAnswerBeginsAnalysis(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	s := New("VECTOR", 2, gen, &mockAnalyzer{}, &mockRepo{})

	enterAnalyzing(t, s)

	if !strings.Contains(s.View(100, 40), "PROCESSING PSYCHOLOGICAL PROFILE") {
		t.Error("expected the analyzing view after the final answer")
	}
}

func TestAnalysisFailureShowsCause(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	an := &mockAnalyzer{err: errors.New("timeout")}
	s := New("VECTOR", 2, gen, an, &mockRepo{})
	enterAnalyzing(t, s)

	s.Update(s.runAnalysis()())
	if s.phase != phaseError {
		t.Fatalf("expected error phase, got %d", s.phase)
	}
	if !strings.Contains(s.View(100, 40), "ANALYSIS FAILED: timeout") {
		t.Error("expected the gateway cause in the fault panel")
	}
}

func TestAnalysisFailureFallbackMessage(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	an := &mockAnalyzer{err: errors.New("")}
	s := New("VECTOR", 2, gen, an, &mockRepo{})
	enterAnalyzing(t, s)

	s.Update(s.runAnalysis()())
	if !strings.Contains(s.View(100, 40), "ANALYSIS FAILED: DATA CORRUPTED") {
		t.Error("expected fallback message for an empty cause")
	}
}

func TestCompletedRunRecordsScoreAndShowsReport(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	an := &mockAnalyzer{report: sampleReport(87)}
	repo := &mockRepo{}
	s := New("VECTOR", 2, gen, an, repo)
	enterAnalyzing(t, s)

	_, cmd := s.Update(s.runAnalysis()())
	if cmd == nil {
		t.Fatal("expected settle command after analysis")
	}
	if an.gotSubject != "VECTOR" {
		t.Errorf("expected analyzer called for VECTOR, got %q", an.gotSubject)
	}
	if len(an.gotAnswers) != 2 {
		t.Errorf("expected full transcript, got %d answers", len(an.gotAnswers))
	}

	_, cmd = s.Update(settleMsg{epoch: s.epoch})
	if cmd == nil {
		t.Fatal("expected finish command after settle")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replace.Screen.(*report.Screen); !ok {
		t.Fatalf("expected report screen, got %T", replace.Screen)
	}

	if repo.records != 1 {
		t.Fatalf("expected exactly one roster write, got %d", repo.records)
	}
	if repo.recordedName != "VECTOR" || repo.recordedScore != 87 {
		t.Errorf("unexpected roster write: %s=%d", repo.recordedName, repo.recordedScore)
	}
}

func TestNilRepoSkipsRecording(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	an := &mockAnalyzer{report: sampleReport(87)}
	s := New("VECTOR", 2, gen, an, nil)
	enterAnalyzing(t, s)

	s.Update(s.runAnalysis()())
	_, cmd := s.Update(settleMsg{epoch: s.epoch})
	if cmd == nil {
		t.Fatal("expected finish command after settle")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected report transition even without a roster store")
	}
}

func TestStaleTicksDropped(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	s := New("VECTOR", 2, gen, &mockAnalyzer{}, &mockRepo{})

	stale := simTickMsg{epoch: s.epoch}
	s.Update(s.fetchQuestions()())

	before := s.sim.Value()
	s.Update(stale)
	if s.sim.Value() != before {
		t.Error("tick from an exited phase should be ignored")
	}

	// A current-epoch tick is also a no-op once the bar is done.
	s.Update(simTickMsg{epoch: s.epoch})
	if s.sim.Value() != before {
		t.Error("tick after completion should be ignored")
	}
}

func TestProgressCappedWhileWaiting(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	s := New("VECTOR", 2, gen, &mockAnalyzer{}, &mockRepo{})

	for i := 0; i < 500; i++ {
		s.Update(simTickMsg{epoch: s.epoch})
	}
	if v := s.sim.Value(); v > 90 {
		t.Errorf("progress must hold below the cap until completion, got %.1f", v)
	}
	if s.phase != phaseGenerating {
		t.Errorf("ticks alone must not change phase, got %d", s.phase)
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	s := New("VECTOR", 2, gen, &mockAnalyzer{}, &mockRepo{})

	_, cmd := s.Update(keyPress('1'))
	if cmd != nil {
		t.Error("expected keys to be swallowed while generating")
	}
	if len(s.state.Answers()) != 0 {
		t.Error("no answer may be recorded before questions arrive")
	}
}

func TestErrorAcknowledgeReturnsToMenu(t *testing.T) {
	gen := &mockGenerator{err: errors.New("boom")}
	s := New("VECTOR", 20, gen, &mockAnalyzer{}, &mockRepo{})
	s.Update(s.fetchQuestions()())

	_, cmd := s.Update(keyPress('x'))
	if cmd != nil {
		t.Error("only the reboot action may leave the fault panel")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected pop command on acknowledge")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg on acknowledge")
	}
}

func TestOperativeAndTitle(t *testing.T) {
	gen := &mockGenerator{questions: sampleQuestions(2)}
	s := New("VECTOR", 2, gen, &mockAnalyzer{}, &mockRepo{})

	if s.Operative() != "VECTOR" {
		t.Errorf("unexpected operative %q", s.Operative())
	}
	if s.Title() != "ESTABLISHING LINK" {
		t.Errorf("unexpected generating title %q", s.Title())
	}

	enterActive(t, s)
	if s.Title() != "ASSESSMENT IN PROGRESS" {
		t.Errorf("unexpected active title %q", s.Title())
	}
}
