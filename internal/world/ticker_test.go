package world

import (
	"testing"
	"time"
)

func TestTickerPerFrame(t *testing.T) {
	tk := NewTicker(0)
	for _, dt := range []time.Duration{0, time.Millisecond, time.Second} {
		if n := tk.Advance(dt); n != 1 {
			t.Errorf("Advance(%v) = %d, want 1", dt, n)
		}
	}
}

func TestTickerFixedRate(t *testing.T) {
	tk := NewTicker(10) // 100ms interval

	steps := []struct {
		dt   time.Duration
		want int
	}{
		{250 * time.Millisecond, 2},
		{40 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{99 * time.Millisecond, 0},
		{time.Millisecond, 1},
	}

	for i, s := range steps {
		if n := tk.Advance(s.dt); n != s.want {
			t.Errorf("step %d: Advance(%v) = %d, want %d", i, s.dt, n, s.want)
		}
	}
}

func TestTickerDropsBacklog(t *testing.T) {
	tk := NewTicker(60)
	if n := tk.Advance(5 * time.Second); n != MaxTicksPerFrame {
		t.Errorf("Advance = %d, want %d", n, MaxTicksPerFrame)
	}
	if n := tk.Advance(0); n != 0 {
		t.Errorf("backlog kept: Advance(0) = %d", n)
	}
}
