// Package session owns the per-tick mutable state of a running simulation:
// elapsed logical time and the play flag. Physics and rendering stay pure;
// the render loop ticks a Clock and threads Elapsed into them.
package session

// Step is the nominal logical-time increment per render tick. Advancing by
// a fixed step rather than wall-clock delta keeps pause and resume
// deterministic in simulation time.
const Step = 1.0 / 60.0

// Clock tracks elapsed simulation time and whether it is advancing.
type Clock struct {
	Elapsed float64
	Playing bool
}

// NewClock returns a clock at t=0, playing.
func NewClock() *Clock {
	return &Clock{Playing: true}
}

// Tick advances elapsed time by one fixed step when playing. Calling it
// while paused is a no-op.
func (c *Clock) Tick() {
	if c.Playing {
		c.Elapsed += Step
	}
}

// Reset zeroes elapsed time without touching the play flag.
func (c *Clock) Reset() {
	c.Elapsed = 0
}

// TogglePlay flips the play flag without touching elapsed time.
func (c *Clock) TogglePlay() {
	c.Playing = !c.Playing
}
