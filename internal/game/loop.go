/*
Package game
File: loop.go
Description:
    The mission heartbeat. One tick equals one mission hour: the loop calls
    Mission.Tick (passive power update, deadline check, one queued path
    step) and hands the resulting snapshot to a broadcast callback.

    Cadence is the host's concern, not the simulation's: the Mission only
    ever sees discrete Tick calls, so tests drive it directly without any
    timer.
*/

package game

import (
	"sync"
	"time"
)

// Loop drives a Mission at a configurable real-time rate.
type Loop struct {
	mu       sync.Mutex
	mission  *Mission
	onTick   func(Snapshot)
	ticker   *time.Ticker
	interval time.Duration
	paused   bool
	stopped  bool
	stop     chan struct{}
}

// NewLoop wires a loop to a mission at the given ticks-per-second rate.
// onTick receives every post-tick snapshot (may be nil).
func NewLoop(m *Mission, ticksPerSecond float64, onTick func(Snapshot)) *Loop {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return &Loop{
		mission:  m,
		onTick:   onTick,
		interval: time.Duration(float64(time.Second) / ticksPerSecond),
		stop:     make(chan struct{}),
	}
}

// Run blocks, ticking the mission until Stop is called.
// Start it as a goroutine: `go loop.Run()`.
func (l *Loop) Run() {
	l.mu.Lock()
	l.ticker = time.NewTicker(l.interval)
	l.mu.Unlock()
	defer l.ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-l.ticker.C:
			l.mu.Lock()
			paused := l.paused
			l.mu.Unlock()
			if paused {
				continue
			}

			l.mu.Lock()
			m := l.mission
			l.mu.Unlock()

			snap := m.Tick()
			if l.onTick != nil {
				l.onTick(snap)
			}
		}
	}
}

// SetMission swaps the mission being ticked (used by the hot-reload reset).
func (l *Loop) SetMission(m *Mission) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mission = m
}

// SetRate changes the tick cadence. Takes effect on the next interval.
func (l *Loop) SetRate(ticksPerSecond float64) {
	if ticksPerSecond <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.interval = time.Duration(float64(time.Second) / ticksPerSecond)
	if l.ticker != nil {
		l.ticker.Reset(l.interval)
	}
}

// Pause stops issuing ticks without tearing the loop down.
func (l *Loop) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = true
}

// Resume re-enables ticking after a Pause.
func (l *Loop) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = false
}

// Paused reports the current pause state.
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// Stop shuts the loop down permanently. Safe to call more than once.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.stopped = true
	close(l.stop)
}
