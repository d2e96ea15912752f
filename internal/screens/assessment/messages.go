package assessment

import (
	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/questiongen"
)

// questionsReadyMsg is sent when the question batch request completes.
type questionsReadyMsg struct {
	Questions []questiongen.Question
	Err       error
}

// analysisReadyMsg is sent when the dossier request completes.
type analysisReadyMsg struct {
	Report *profile.Report
	Err    error
}

// simTickMsg advances the simulated progress bar. The epoch ties the tick
// to the phase that scheduled it so stale ticks are dropped.
type simTickMsg struct {
	epoch int
}

// settleMsg ends the brief hold at 100% before leaving a loading phase.
type settleMsg struct {
	epoch int
}
