package session

import (
	"math/rand/v2"
	"time"
)

// ProgressSim drives the simulated progress readout shown while an LLM
// call runs in the background. Each tick advances by a random fraction of
// the step size, holding at 90 until the real work finishes and
// ForceComplete snaps the bar to 100.
type ProgressSim struct {
	value    float64
	step     float64
	interval time.Duration
	done     bool
}

// simCeiling is where the bar parks while waiting on the real result.
const simCeiling = 90

// NewGenerationSim returns the simulator used during question generation.
func NewGenerationSim() *ProgressSim {
	return &ProgressSim{step: 5, interval: 200 * time.Millisecond}
}

// NewAnalysisSim returns the slower simulator used during profile analysis.
func NewAnalysisSim() *ProgressSim {
	return &ProgressSim{step: 2, interval: 150 * time.Millisecond}
}

// Tick advances the simulated value. It is a no-op once the simulator has
// been forced to completion.
func (p *ProgressSim) Tick() {
	if p.done {
		return
	}
	p.value += rand.Float64() * p.step
	if p.value > simCeiling {
		p.value = simCeiling
	}
}

// ForceComplete jumps the bar to 100 once the underlying work is done.
func (p *ProgressSim) ForceComplete() {
	p.value = 100
	p.done = true
}

// Value returns the current simulated progress on the 0-100 scale.
func (p *ProgressSim) Value() float64 {
	return p.value
}

// Interval returns the tick cadence for this simulator.
func (p *ProgressSim) Interval() time.Duration {
	return p.interval
}

// Done reports whether ForceComplete has been called.
func (p *ProgressSim) Done() bool {
	return p.done
}
