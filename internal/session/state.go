package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/dsengupta/mindprobe/internal/questiongen"
)

// Answer records one submitted response. Question text and dimension are
// denormalized at answer time so the transcript stands on its own.
type Answer struct {
	QuestionID     int
	QuestionText   string
	Dimension      string
	SelectedOption string
	TimeTakenMs    int
}

// State tracks one assessment run from first question to finished
// transcript. The answered prefix is append-only: recorded answers never
// change as the run advances.
type State struct {
	// SessionID is the UUID for this run.
	SessionID string

	// Subject is the operative callsign captured at login.
	Subject string

	questions     []questiongen.Question
	answers       []Answer
	index         int
	questionStart time.Time
	startedAt     time.Time
}

// NewState creates an empty run for the given subject.
func NewState(subject string) *State {
	return &State{
		SessionID: uuid.New().String(),
		Subject:   subject,
	}
}

// Start loads the question set and resets the cursor and transcript.
// The per-question timer starts immediately.
func (s *State) Start(questions []questiongen.Question) {
	s.questions = questions
	s.answers = s.answers[:0]
	s.index = 0
	now := time.Now()
	s.questionStart = now
	s.startedAt = now
}

// Current returns the question awaiting an answer, or false when the run
// is exhausted (or never started).
func (s *State) Current() (questiongen.Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return questiongen.Question{}, false
	}
	return s.questions[s.index], true
}

// RecordAnswer appends the answer for the current question, advances the
// cursor, and restarts the question timer. It reports false (and records
// nothing) when there is no current question.
func (s *State) RecordAnswer(selected string) (Answer, bool) {
	q, ok := s.Current()
	if !ok {
		return Answer{}, false
	}

	elapsed := time.Since(s.questionStart)
	if elapsed < 0 {
		elapsed = 0
	}

	a := Answer{
		QuestionID:     q.ID,
		QuestionText:   q.Text,
		Dimension:      q.Dimension,
		SelectedOption: selected,
		TimeTakenMs:    int(elapsed.Milliseconds()),
	}
	s.answers = append(s.answers, a)
	s.index++
	s.questionStart = time.Now()
	return a, true
}

// Answers returns the transcript so far, oldest first.
func (s *State) Answers() []Answer {
	return s.answers
}

// Completed returns the number of answered questions.
func (s *State) Completed() int {
	return s.index
}

// Total returns the size of the question set.
func (s *State) Total() int {
	return len(s.questions)
}

// Finished reports whether every question has been answered.
func (s *State) Finished() bool {
	return len(s.questions) > 0 && s.index >= len(s.questions)
}

// Progress returns completion on the 0-100 scale.
func (s *State) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.index) / float64(len(s.questions)) * 100
}

// StartedAt returns when the run began.
func (s *State) StartedAt() time.Time {
	return s.startedAt
}
