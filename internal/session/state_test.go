package session

import (
	"testing"

	"github.com/dsengupta/mindprobe/internal/questiongen"
)

func testQuestions(n int) []questiongen.Question {
	qs := make([]questiongen.Question, n)
	for i := range qs {
		qs[i] = questiongen.Question{
			ID:        i + 1,
			Text:      "You are handed a sealed envelope and told not to open it.",
			Dimension: "Curiosity",
			Options:   []string{"Open it immediately", "Hold it unopened", "Ask why", "Hand it back"},
		}
	}
	return qs
}

func TestNewState(t *testing.T) {
	s := NewState("VECTOR")
	if s.SessionID == "" {
		t.Error("expected non-empty session ID")
	}
	if s.Subject != "VECTOR" {
		t.Errorf("expected subject VECTOR, got %q", s.Subject)
	}
	if _, ok := s.Current(); ok {
		t.Error("expected no current question before Start")
	}
}

func TestStartAndCurrent(t *testing.T) {
	s := NewState("VECTOR")
	s.Start(testQuestions(3))

	q, ok := s.Current()
	if !ok {
		t.Fatal("expected a current question after Start")
	}
	if q.ID != 1 {
		t.Errorf("expected question 1 first, got %d", q.ID)
	}
	if s.Total() != 3 {
		t.Errorf("expected total 3, got %d", s.Total())
	}
	if s.Completed() != 0 {
		t.Errorf("expected 0 completed, got %d", s.Completed())
	}
	if s.StartedAt().IsZero() {
		t.Error("expected StartedAt to be set")
	}
}

func TestRecordAnswerAdvances(t *testing.T) {
	s := NewState("VECTOR")
	s.Start(testQuestions(2))

	a, ok := s.RecordAnswer("Ask why")
	if !ok {
		t.Fatal("expected answer to be recorded")
	}
	if a.QuestionID != 1 {
		t.Errorf("expected question id 1, got %d", a.QuestionID)
	}
	if a.QuestionText == "" || a.Dimension != "Curiosity" {
		t.Errorf("expected denormalized question fields, got %+v", a)
	}
	if a.SelectedOption != "Ask why" {
		t.Errorf("unexpected selection: %q", a.SelectedOption)
	}
	if a.TimeTakenMs < 0 {
		t.Errorf("expected non-negative time, got %d", a.TimeTakenMs)
	}

	if s.Completed() != 1 {
		t.Errorf("expected 1 completed, got %d", s.Completed())
	}
	q, ok := s.Current()
	if !ok || q.ID != 2 {
		t.Errorf("expected question 2 current, got %v ok=%t", q.ID, ok)
	}
	if len(s.Answers()) != s.Completed() {
		t.Errorf("answers length %d out of step with completed %d", len(s.Answers()), s.Completed())
	}
}

func TestRecordAnswerExhausted(t *testing.T) {
	s := NewState("VECTOR")
	s.Start(testQuestions(1))

	if _, ok := s.RecordAnswer("Open it immediately"); !ok {
		t.Fatal("first answer should record")
	}
	if !s.Finished() {
		t.Error("expected run to be finished")
	}

	if _, ok := s.RecordAnswer("Hold it unopened"); ok {
		t.Error("expected no-op after exhaustion")
	}
	if len(s.Answers()) != 1 {
		t.Errorf("expected transcript unchanged, got %d answers", len(s.Answers()))
	}
}

func TestAnswersAppendOnly(t *testing.T) {
	s := NewState("VECTOR")
	s.Start(testQuestions(3))

	first, _ := s.RecordAnswer("Open it immediately")
	s.RecordAnswer("Hand it back")

	if s.Answers()[0] != first {
		t.Error("recorded prefix changed after later answers")
	}
}

func TestProgress(t *testing.T) {
	s := NewState("VECTOR")
	if s.Progress() != 0 {
		t.Errorf("expected 0 progress before Start, got %f", s.Progress())
	}

	s.Start(testQuestions(4))
	s.RecordAnswer("Ask why")
	if got := s.Progress(); got != 25 {
		t.Errorf("expected progress 25, got %f", got)
	}

	s.RecordAnswer("Ask why")
	s.RecordAnswer("Ask why")
	s.RecordAnswer("Ask why")
	if got := s.Progress(); got != 100 {
		t.Errorf("expected progress 100, got %f", got)
	}
}

func TestStartResetsTranscript(t *testing.T) {
	s := NewState("VECTOR")
	s.Start(testQuestions(1))
	s.RecordAnswer("Ask why")

	s.Start(testQuestions(2))
	if len(s.Answers()) != 0 {
		t.Errorf("expected empty transcript after restart, got %d", len(s.Answers()))
	}
	if s.Completed() != 0 {
		t.Errorf("expected cursor reset, got %d", s.Completed())
	}
	if s.Finished() {
		t.Error("fresh run should not be finished")
	}
}
