package session

import (
	"math"
	"testing"
)

func TestClockTicksFixedStep(t *testing.T) {
	c := NewClock()
	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if math.Abs(c.Elapsed-1.0) > 1e-9 {
		t.Errorf("elapsed after 60 ticks = %v, want 1.0", c.Elapsed)
	}
}

func TestClockPauseFreezesTime(t *testing.T) {
	c := NewClock()
	c.Tick()
	c.Tick()
	was := c.Elapsed

	c.TogglePlay()
	if c.Playing {
		t.Fatal("clock should be paused after toggle")
	}
	c.Tick()
	c.Tick()
	if c.Elapsed != was {
		t.Errorf("elapsed advanced while paused: %v != %v", c.Elapsed, was)
	}

	c.TogglePlay()
	c.Tick()
	if c.Elapsed <= was {
		t.Error("elapsed should advance after resuming")
	}
}

func TestClockResetKeepsPlayState(t *testing.T) {
	c := NewClock()
	c.Tick()
	c.TogglePlay() // pause
	c.Reset()
	if c.Elapsed != 0 {
		t.Errorf("elapsed after reset = %v, want 0", c.Elapsed)
	}
	if c.Playing {
		t.Error("reset should not resume a paused clock")
	}

	c.TogglePlay() // resume
	c.Tick()
	c.Reset()
	if !c.Playing {
		t.Error("reset should not pause a running clock")
	}
}
