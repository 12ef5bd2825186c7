package world

import "time"

// MaxTicksPerFrame bounds catch-up after a long frame.
const MaxTicksPerFrame = 10

// Ticker converts frame time into fixed-rate animation ticks.
// A zero rate ticks exactly once per frame.
type Ticker struct {
	interval time.Duration
	acc      time.Duration
}

// NewTicker creates a ticker firing rate times per second.
func NewTicker(rate int) *Ticker {
	t := &Ticker{}
	if rate > 0 {
		t.interval = time.Second / time.Duration(rate)
	}
	return t
}

// Advance adds frame time and returns how many ticks are due.
func (t *Ticker) Advance(dt time.Duration) int {
	if t.interval == 0 {
		return 1
	}

	t.acc += dt
	n := int(t.acc / t.interval)
	t.acc -= time.Duration(n) * t.interval

	if n > MaxTicksPerFrame {
		// Drop the backlog instead of spiralling after a hitch.
		n = MaxTicksPerFrame
		t.acc = 0
	}
	return n
}
