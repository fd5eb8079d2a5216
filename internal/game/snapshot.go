/*
Package game
File: snapshot.go
Description:
    The read-only mission snapshot handed to the presentation layer after
    every mutation and on every tick pulse. Everything the UI renders comes
    from this struct; nothing in it aliases live mission state.
*/

package game

// Snapshot is a point-in-time copy of the mission. The grid is an array
// value, so the copy is deep; the log slice is rebuilt per call.
type Snapshot struct {
	MissionID string `json:"mission_id"`
	Seed      int64  `json:"seed"`

	Hour       int     `json:"hour"`
	TotalHours int     `json:"total_hours"`
	Power      float64 `json:"power"`
	DataBuffer float64 `json:"data_buffer"`
	Potential  float64 `json:"resource_potential"`
	Mode       Mode    `json:"mode"`

	Position       Position `json:"position"`
	Grid           Grid     `json:"grid"`
	Irradiance     float64  `json:"irradiance"`
	CommWindowOpen bool     `json:"comm_window_open"`

	Objectives   []Objective        `json:"objectives"`
	Challenge    *SpectrumChallenge `json:"challenge,omitempty"`
	PendingSteps int                `json:"pending_steps"`
	Log          []string           `json:"log"` // newest first
}

// Snapshot returns the current mission state for rendering.
func (m *Mission) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// snapshotLocked builds the snapshot. Caller must hold the mutex.
func (m *Mission) snapshotLocked() Snapshot {
	objs := make([]Objective, len(m.objectives))
	copy(objs, m.objectives)

	logCopy := make([]string, len(m.log))
	copy(logCopy, m.log)

	var challenge *SpectrumChallenge
	if m.challenge != nil {
		c := *m.challenge
		c.Guessed = append([]string{}, m.challenge.Guessed...)
		c.Targets = nil // hidden set never leaves the engine
		challenge = &c
	}

	return Snapshot{
		MissionID:      m.id,
		Seed:           m.seed,
		Hour:           m.hour,
		TotalHours:     TotalHours,
		Power:          m.power,
		DataBuffer:     m.buffer,
		Potential:      m.potential,
		Mode:           m.mode,
		Position:       m.pos,
		Grid:           m.grid,
		Irradiance:     Irradiance(m.hour, m.tile().Type),
		CommWindowOpen: CommWindowOpen(m.hour, m.cfg.CommWindows),
		Objectives:     objs,
		Challenge:      challenge,
		PendingSteps:   len(m.path),
		Log:            logCopy,
	}
}

// Elements exposes the configured spectral catalog (read-only reference
// data for the UI's guess buttons).
func (m *Mission) Elements() []Element {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Element, len(m.cfg.Elements))
	copy(out, m.cfg.Elements)
	return out
}
