/*
Package game
File: mission.go
Description:
    The Mission controller. Owns the single authoritative mission state and
    is its sole mutation point: every intent from the API layer is a method
    here, validated against the rules in mechanics.go, executed under one
    mutex, and answered with a fresh snapshot.

    Player mistakes are not errors. An intent that fails its preconditions
    (not enough power, closed comm window, empty buffer, off-grid move) is a
    logged no-op; the HTTP layer still returns 200 with the unchanged state.
*/

package game

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// Mission holds one rover campaign. Construct with NewMission; all exported
// methods are safe for concurrent use (they serialize on the mutex).
type Mission struct {
	mu  sync.Mutex
	cfg Config
	rng *rand.Rand

	id   string
	seed int64

	grid      Grid
	pos       Position
	hour      int
	power     float64
	buffer    float64
	potential float64
	mode      Mode

	objectives []Objective
	challenge  *SpectrumChallenge
	path       []Position // queued absolute steps, drained one per tick
	log        []string   // newest first, capped at LogCap
}

// NewMission generates the surface for the given seed and deploys the rover
// at the lander with a full battery. The same seed always produces the same
// surface; the mission RNG (hazards, minigame, wake draws) is seeded from it
// too, so identical intent sequences replay identically.
func NewMission(seed int64, cfg Config) *Mission {
	grid, lander := Generate(seed)

	m := &Mission{
		cfg:        cfg,
		rng:        rand.New(rand.NewPCG(uint64(seed), uint64(seed)*0x9e3779b9)),
		id:         uuid.NewString(),
		seed:       seed,
		grid:       grid,
		pos:        lander,
		power:      MaxPower,
		mode:       ModeNavigation,
		objectives: newObjectives(),
	}
	m.markSeen()
	m.logf("TOUCHDOWN: Rover deployed at (%d,%d). Battery %.0f%%.", lander.Row, lander.Col, m.power)
	m.logf("MISSION: %d hours until terminal night.", TotalHours)
	return m
}

// --- Clock -----------------------------------------------------------------

// advanceClock moves the mission hour forward by delta and applies the
// passive power update once, using the tile under the rover at the time of
// the action (not per intermediate hour). Forces hibernation at the deadline.
// Caller must hold the mutex.
func (m *Mission) advanceClock(delta int) {
	if delta <= 0 {
		return
	}

	m.hour += delta
	if m.hour > TotalHours {
		m.hour = TotalHours
	}

	// Passive economy: solar charge minus idle drain, one application per
	// clock advance regardless of delta.
	irr := Irradiance(m.hour, m.tile().Type)
	m.power = clamp(m.power+irr/100*m.cfg.Balance.ChargeScale-m.cfg.Balance.IdleDrain, 0, MaxPower)

	// Deadline check: the only automatic mode transition in the system.
	if m.hour >= TotalHours && m.mode != ModeHibernating && m.mode != ModeAwaitWake {
		m.mode = ModeHibernating
		m.challenge = nil
		m.path = nil
		m.logf("CRITICAL: Mission clock expired. Entering survival hibernation.")
	}
}

// Tick is the scheduler heartbeat: one tick equals one mission hour. It
// applies the passive power update, runs the deadline check, and drains at
// most one queued path step.
func (m *Mission) Tick() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.advanceClock(1)

	if m.mode == ModeNavigation && len(m.path) > 0 {
		next := m.path[0]
		m.path = m.path[1:]
		if !m.stepTo(next) {
			// Depleted or blocked mid-route: the failed step has logged
			// itself; drop the rest of the route.
			m.path = nil
		}
	}

	return m.snapshotLocked()
}

// --- Movement --------------------------------------------------------------

// Move drives the rover one cell. Diagonal intents are rejected.
func (m *Mission) Move(dRow, dCol int) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.operable() {
		return m.snapshotLocked()
	}
	if dRow*dRow+dCol*dCol != 1 {
		m.logf("DRIVE: Invalid step (%+d,%+d); one cell at a time.", dRow, dCol)
		return m.snapshotLocked()
	}

	m.abandonAnalysis()
	m.stepTo(Position{Row: m.pos.Row + dRow, Col: m.pos.Col + dCol})
	return m.snapshotLocked()
}

// QueuePath plans a greedy axis-by-axis route to the target cell. Steps are
// drained one per tick and re-validated independently at execution time.
func (m *Mission) QueuePath(row, col int) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.operable() {
		return m.snapshotLocked()
	}
	target := Position{Row: row, Col: col}
	if !InBounds(target) {
		m.logf("ROUTE: Target (%d,%d) is off the map.", row, col)
		return m.snapshotLocked()
	}

	m.abandonAnalysis()

	steps := []Position{}
	cur := m.pos
	for cur.Row != target.Row {
		cur.Row += sign(target.Row - cur.Row)
		steps = append(steps, cur)
	}
	for cur.Col != target.Col {
		cur.Col += sign(target.Col - cur.Col)
		steps = append(steps, cur)
	}

	m.path = steps
	if len(steps) == 0 {
		m.logf("ROUTE: Already at (%d,%d).", row, col)
	} else {
		m.logf("ROUTE: %d steps queued toward (%d,%d).", len(steps), row, col)
	}
	return m.snapshotLocked()
}

// ClearPath cancels any queued route.
func (m *Mission) ClearPath() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.path) > 0 {
		m.path = nil
		m.logf("ROUTE: Remaining steps cleared.")
	}
	return m.snapshotLocked()
}

// stepTo executes one validated single-cell move. Returns false on
// rejection. Caller must hold the mutex.
func (m *Mission) stepTo(dest Position) bool {
	if !InBounds(dest) {
		m.logf("DRIVE: (%d,%d) is off the map.", dest.Row, dest.Col)
		return false
	}

	destTile := m.grid[dest.Row][dest.Col].Type
	cost := MoveCost(destTile)
	if m.power < cost+m.cfg.Balance.PowerReserve {
		m.logf("DRIVE: Not enough power (%.1f needed, %.1f available).", cost+m.cfg.Balance.PowerReserve, m.power)
		return false
	}

	m.power -= cost
	m.pos = dest
	m.markSeen()

	// Wheel slip on rough terrain: lose time and extra charge. The move is
	// already committed and is never re-validated against the slip cost.
	if SlipRisk(destTile) && m.rng.Float64() < m.cfg.Balance.SlipChance {
		m.advanceClock(m.cfg.Balance.SlipHours)
		m.power = clamp(m.power-m.cfg.Balance.SlipPower, 0, MaxPower)
		m.logf("HAZARD: Wheel slip on %s terrain. Lost %dh and %.0f%% power.",
			destTile, m.cfg.Balance.SlipHours, m.cfg.Balance.SlipPower)
	}
	return true
}

// markSeen flags the rover's 3x3 neighborhood as observed.
func (m *Mission) markSeen() {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := m.pos.Row+dr, m.pos.Col+dc
			if r < 0 || r >= GridSize || c < 0 || c >= GridSize {
				continue
			}
			m.grid[r][c].Seen = true
		}
	}
}

// --- Instruments & analysis ------------------------------------------------

// UseInstrument powers up APXS or LIBS on the current tile and opens a
// spectrum challenge scaled by the tile's science value.
func (m *Mission) UseInstrument(kind InstrumentKind) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.operable() {
		return m.snapshotLocked()
	}
	if m.mode == ModeAnalyzing {
		m.logf("SCIENCE: Analysis already in progress.")
		return m.snapshotLocked()
	}

	power, hours := InstrumentCost(kind)
	if m.power < power+m.cfg.Balance.PowerReserve {
		m.logf("SCIENCE: Not enough power for %s (%.1f needed, %.1f available).",
			kind, power+m.cfg.Balance.PowerReserve, m.power)
		return m.snapshotLocked()
	}

	science := m.tile().Science
	if science < 1 {
		science = 1
	}

	m.power = clamp(m.power-power, 0, MaxPower)
	m.advanceClock(hours)
	if m.mode != ModeNavigation {
		// The instrument run carried us across the deadline.
		return m.snapshotLocked()
	}

	m.challenge = NewChallenge(m.rng, m.cfg.Elements, science)
	m.mode = ModeAnalyzing
	m.logf("SCIENCE: %s active. %d spectral lines to identify.", kind, m.challenge.Size)
	return m.snapshotLocked()
}

// GuessElement submits one element guess against the active challenge.
func (m *Mission) GuessElement(key string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mode != ModeAnalyzing || m.challenge == nil {
		m.logf("SCIENCE: No analysis in progress.")
		return m.snapshotLocked()
	}
	if m.elementName(key) == "" {
		m.logf("SCIENCE: Unknown element key %q.", key)
		return m.snapshotLocked()
	}

	res := m.challenge.Guess(key)
	if res.Repeated {
		return m.snapshotLocked()
	}

	if res.Correct {
		gain := m.cfg.Balance.ScienceGainMin +
			m.rng.Float64()*(m.cfg.Balance.ScienceGainMax-m.cfg.Balance.ScienceGainMin)
		m.buffer = clamp(m.buffer+gain, 0, MaxBuffer)

		bump := m.cfg.Balance.PotentialBase
		if NearPSR(&m.grid, m.pos) {
			bump = m.cfg.Balance.PotentialNearPSR
		}
		m.potential = clamp(m.potential+bump, 0, MaxPotential)

		m.logf("SCIENCE: %s confirmed. +%.1f Mb survey data.", m.elementName(key), gain)

		adjacent := psrNeighbors(&m.grid, m.pos.Row, m.pos.Col) > 0
		for _, id := range evaluateObjectives(m.objectives, key, m.tile().Type, adjacent, m.buffer) {
			m.logf("OBJECTIVE COMPLETE: %s", id)
		}
	} else {
		m.logf("SCIENCE: No %s line in this sample.", m.elementName(key))
	}

	if res.Done {
		m.challenge = nil
		m.mode = ModeNavigation
		m.logf("SCIENCE: Sample fully characterized.")
	}
	return m.snapshotLocked()
}

// abandonAnalysis discards an active challenge when a navigation intent
// interrupts it. Caller must hold the mutex.
func (m *Mission) abandonAnalysis() {
	if m.mode != ModeAnalyzing {
		return
	}
	m.challenge = nil
	m.mode = ModeNavigation
	m.logf("SCIENCE: Analysis abandoned.")
}

// --- Transmission ----------------------------------------------------------

// Transmit uplinks the data buffer to the relay. Requires an open comm
// window and a non-empty buffer; the session costs power once and takes
// longer the fuller the buffer.
func (m *Mission) Transmit() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.operable() {
		return m.snapshotLocked()
	}
	m.abandonAnalysis()

	if m.buffer <= 0 {
		m.logf("COMMS: Data buffer is empty.")
		return m.snapshotLocked()
	}
	if !CommWindowOpen(m.hour, m.cfg.CommWindows) {
		m.logf("COMMS: Relay not overhead. Next window required.")
		return m.snapshotLocked()
	}

	cost := TransmitPowerCost(m.buffer)
	if m.power < cost+m.cfg.Balance.PowerReserve {
		m.logf("COMMS: Not enough power for uplink (%.1f needed, %.1f available).",
			cost+m.cfg.Balance.PowerReserve, m.power)
		return m.snapshotLocked()
	}

	hours := TransmitHours(m.buffer)
	sent := m.buffer
	m.power = clamp(m.power-cost, 0, MaxPower)
	m.buffer = 0
	m.advanceClock(hours)
	m.logf("COMMS: Uplinked %.1f Mb over %dh session.", sent, hours)
	return m.snapshotLocked()
}

// --- Hibernation -----------------------------------------------------------

// BeginHibernation powers the rover down voluntarily.
func (m *Mission) BeginHibernation() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.operable() {
		return m.snapshotLocked()
	}
	m.abandonAnalysis()

	m.mode = ModeHibernating
	m.path = nil
	m.logf("SYSTEMS: Entering hibernation. Wake sequence required to resume.")
	return m.snapshotLocked()
}

// AttemptWake rolls the restart sequence. Skill (0..1) comes from the
// operator's timing precision; terrain under the rover sets the base odds.
// Failure is terminal: the mission stays in AwaitingWake.
func (m *Mission) AttemptWake(skill float64) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mode != ModeHibernating {
		m.logf("SYSTEMS: No hibernation to wake from.")
		return m.snapshotLocked()
	}

	skill = clamp(skill, 0, 1)
	p := WakeProbability(skill, m.tile().Type)

	if m.rng.Float64() < p {
		m.mode = ModeNavigation
		m.logf("SYSTEMS: Wake successful (%.0f%% odds). All systems nominal.", p*100)
	} else {
		m.mode = ModeAwaitWake
		m.logf("SYSTEMS: Wake sequence failed (%.0f%% odds). No further telemetry.", p*100)
	}
	return m.snapshotLocked()
}

// --- Helpers ---------------------------------------------------------------

// operable reports whether the rover accepts navigation/science intents,
// logging the rejection when it does not. Caller must hold the mutex.
func (m *Mission) operable() bool {
	switch m.mode {
	case ModeHibernating:
		m.logf("SYSTEMS: Rover is hibernating.")
		return false
	case ModeAwaitWake:
		m.logf("SYSTEMS: Rover is not responding.")
		return false
	}
	return true
}

func (m *Mission) tile() Tile {
	return m.grid[m.pos.Row][m.pos.Col]
}

func (m *Mission) elementName(key string) string {
	for _, e := range m.cfg.Elements {
		if e.Key == key {
			return e.Name
		}
	}
	return ""
}

// logf prepends a formatted entry to the mission log (newest first) and
// trims to LogCap.
func (m *Mission) logf(format string, args ...interface{}) {
	entry := fmt.Sprintf(format, args...)
	m.log = append([]string{entry}, m.log...)
	if len(m.log) > LogCap {
		m.log = m.log[:LogCap]
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
