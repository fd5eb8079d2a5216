package game

import (
	"testing"
	"time"
)

func TestLoopTicksMission(t *testing.T) {
	m := NewMission(31, DefaultConfig())

	pulses := make(chan Snapshot, 64)
	l := NewLoop(m, 100, func(s Snapshot) { pulses <- s })
	go l.Run()
	defer l.Stop()

	select {
	case snap := <-pulses:
		if snap.Hour < 1 {
			t.Fatalf("pulse carried hour %d, want >= 1", snap.Hour)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no pulse within 2s at 100 ticks/s")
	}
}

func TestLoopPauseStopsClock(t *testing.T) {
	m := NewMission(32, DefaultConfig())
	l := NewLoop(m, 100, nil)
	go l.Run()
	defer l.Stop()

	l.Pause()
	if !l.Paused() {
		t.Fatal("pause flag not set")
	}

	// Give any in-flight tick time to land, then verify the clock is frozen.
	time.Sleep(50 * time.Millisecond)
	before := m.Snapshot().Hour
	time.Sleep(100 * time.Millisecond)
	if after := m.Snapshot().Hour; after != before {
		t.Fatalf("clock moved %d -> %d while paused", before, after)
	}

	l.Resume()
	time.Sleep(100 * time.Millisecond)
	if after := m.Snapshot().Hour; after == before {
		t.Fatal("clock did not resume")
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	m := NewMission(34, DefaultConfig())
	l := NewLoop(m, 100, nil)
	go l.Run()

	l.Stop()
	l.Stop() // a second stop must be a no-op, not a panic
}

func TestLoopRejectsNonPositiveRate(t *testing.T) {
	m := NewMission(33, DefaultConfig())
	l := NewLoop(m, -5, nil)
	if l.interval <= 0 {
		t.Fatalf("interval %v after negative rate, want fallback", l.interval)
	}
	l.SetRate(0) // must be ignored, not panic
	if l.interval <= 0 {
		t.Fatal("SetRate(0) corrupted the interval")
	}
}
