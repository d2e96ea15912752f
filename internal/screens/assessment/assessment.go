package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/questiongen"
	"github.com/dsengupta/mindprobe/internal/router"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/screens/report"
	"github.com/dsengupta/mindprobe/internal/session"
	"github.com/dsengupta/mindprobe/internal/store"
	"github.com/dsengupta/mindprobe/internal/ui/components"
	"github.com/dsengupta/mindprobe/internal/ui/layout"
)

// phase is the leg of the assessment lifecycle the screen is currently in.
type phase int

const (
	phaseGenerating phase = iota
	phaseActive
	phaseAnalyzing
	phaseError
)

// Settle delays keep the bar visible at 100% for a beat before the screen
// moves on.
const (
	generationSettle = 500 * time.Millisecond
	analysisSettle   = 800 * time.Millisecond
)

// Screen runs one full assessment: question generation, the answer loop,
// and profile analysis. It ends by replacing itself with the dossier report
// or, on a gateway failure, by showing a fault panel that pops back to the
// menu.
type Screen struct {
	operative string
	count     int
	generator questiongen.Generator
	analyzer  profile.Analyzer
	lbRepo    store.LeaderboardRepo

	phase  phase
	state  *session.State
	sim    *session.ProgressSim
	picker components.OptionPicker
	ack    components.Button

	// epoch invalidates tick and settle messages scheduled by a phase
	// that has already been left.
	epoch    int
	settling bool

	pending []questiongen.Question
	result  *profile.Report
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.OperativeProvider = (*Screen)(nil)

// New creates an assessment screen for the given operative and question count.
func New(operative string, count int, generator questiongen.Generator, analyzer profile.Analyzer, lbRepo store.LeaderboardRepo) *Screen {
	return &Screen{
		operative: operative,
		count:     count,
		generator: generator,
		analyzer:  analyzer,
		lbRepo:    lbRepo,
		phase:     phaseGenerating,
		state:     session.NewState(operative),
		sim:       session.NewGenerationSim(),
	}
}

// Init starts the question request and the progress ticker.
func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.fetchQuestions(), s.tickCmd())
}

// Title returns the header title for the current phase.
func (s *Screen) Title() string {
	switch s.phase {
	case phaseGenerating:
		return "ESTABLISHING LINK"
	case phaseAnalyzing:
		return "PROFILE ANALYSIS"
	case phaseError:
		return "SYSTEM FAULT"
	default:
		return "ASSESSMENT IN PROGRESS"
	}
}

// Operative implements screen.OperativeProvider.
func (s *Screen) Operative() string {
	return s.operative
}

// KeyHints implements screen.KeyHintProvider.
func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseActive:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "move"},
			{Key: "1-4", Description: "answer"},
			{Key: "enter", Description: "confirm"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "enter", Description: "reboot to menu"},
		}
	default:
		return nil
	}
}

// Update implements screen.Screen.
func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case simTickMsg:
		return s.handleSimTick(msg)
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)
	case analysisReadyMsg:
		return s.handleAnalysisReady(msg)
	case settleMsg:
		return s.handleSettle(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleSimTick(msg simTickMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != s.epoch || s.sim.Done() {
		return s, nil
	}
	s.sim.Tick()
	return s, s.tickCmd()
}

func (s *Screen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseGenerating {
		return s, nil
	}
	if msg.Err != nil {
		s.fail("CONNECTION FAILED", msg.Err, "UNKNOWN ERROR")
		return s, nil
	}
	s.pending = msg.Questions
	return s, s.completeAndSettle(generationSettle)
}

func (s *Screen) handleAnalysisReady(msg analysisReadyMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseAnalyzing {
		return s, nil
	}
	if msg.Err != nil {
		s.fail("ANALYSIS FAILED", msg.Err, "DATA CORRUPTED")
		return s, nil
	}
	s.result = msg.Report
	return s, s.completeAndSettle(analysisSettle)
}

func (s *Screen) handleSettle(msg settleMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != s.epoch || !s.settling {
		return s, nil
	}
	s.settling = false
	switch s.phase {
	case phaseGenerating:
		s.state.Start(s.pending)
		s.pending = nil
		s.phase = phaseActive
		s.nextPicker()
		return s, nil
	case phaseAnalyzing:
		return s, s.finishCmd()
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseActive:
		return s.handleAnswerKey(msg)
	case phaseError:
		var cmd tea.Cmd
		s.ack, cmd = s.ack.Update(msg)
		return s, cmd
	}
	// Loading phases take no input.
	return s, nil
}

func (s *Screen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	if !s.picker.Submitted {
		return s, cmd
	}
	if _, ok := s.state.RecordAnswer(s.picker.Choice()); !ok {
		return s, cmd
	}
	if s.state.Finished() {
		return s, s.beginAnalysis()
	}
	s.nextPicker()
	return s, cmd
}

func (s *Screen) beginAnalysis() tea.Cmd {
	s.phase = phaseAnalyzing
	s.sim = session.NewAnalysisSim()
	s.epoch++
	return tea.Batch(s.runAnalysis(), s.tickCmd())
}

// completeAndSettle forces the bar to 100%, cancels the tick chain, and
// schedules the settle hold.
func (s *Screen) completeAndSettle(d time.Duration) tea.Cmd {
	s.sim.ForceComplete()
	s.epoch++
	s.settling = true
	return s.settleCmd(d)
}

// fail switches to the fault panel. The message keeps the gateway's own
// error text so the operator sees the real cause.
func (s *Screen) fail(prefix string, err error, fallback string) {
	cause := fallback
	if err != nil && err.Error() != "" {
		cause = err.Error()
	}
	s.phase = phaseError
	s.errMsg = prefix + ": " + cause
	s.epoch++
	s.ack = components.NewButton("REBOOT TO MENU", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
}

func (s *Screen) nextPicker() {
	if q, ok := s.state.Current(); ok {
		s.picker = components.NewOptionPicker(q.Text, q.Options)
	}
}

func (s *Screen) fetchQuestions() tea.Cmd {
	generator := s.generator
	count := s.count
	return func() tea.Msg {
		questions, err := generator.Generate(context.Background(), count)
		return questionsReadyMsg{Questions: questions, Err: err}
	}
}

func (s *Screen) runAnalysis() tea.Cmd {
	analyzer := s.analyzer
	answers := s.state.Answers()
	operative := s.operative
	return func() tea.Msg {
		rep, err := analyzer.Analyze(context.Background(), answers, operative)
		return analysisReadyMsg{Report: rep, Err: err}
	}
}

// finishCmd records the score on the roster and swaps in the dossier
// report. Recording is best-effort; a failed write must not hide a
// finished evaluation.
func (s *Screen) finishCmd() tea.Cmd {
	repo := s.lbRepo
	operative := s.operative
	rep := s.result
	return func() tea.Msg {
		if repo != nil {
			_, _ = repo.Record(context.Background(), operative, rep.Score)
		}
		return router.ReplaceScreenMsg{Screen: report.New(rep)}
	}
}

func (s *Screen) tickCmd() tea.Cmd {
	epoch := s.epoch
	return tea.Tick(s.sim.Interval(), func(time.Time) tea.Msg {
		return simTickMsg{epoch: epoch}
	})
}

func (s *Screen) settleCmd(d time.Duration) tea.Cmd {
	epoch := s.epoch
	return tea.Tick(d, func(time.Time) tea.Msg {
		return settleMsg{epoch: epoch}
	})
}
