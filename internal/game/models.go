/*
Package game
File: models.go
Description:
    Defines all data structures (Structs) used throughout the rover mission.
    This file serves as the "schema" for the application, mapping directly to
    YAML configuration files and JSON API responses.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// Mission shape constants. These define the physical frame of the campaign
// and are compile-time fixed; tuning values live in 'mission.yaml'.
const (
	GridSize     = 12  // Surface map is GridSize x GridSize tiles
	TotalHours   = 336 // Mission length; reaching it forces hibernation
	MaxBuffer    = 100 // Data buffer capacity (abstract Mb)
	MaxPower     = 100 // Battery capacity (percent)
	MaxPotential = 100 // Resource potential score ceiling
	LogCap       = 100 // Maximum retained mission log entries
)

// TileType classifies a single cell of the surface grid.
type TileType string

const (
	TileNormal  TileType = "normal"  // Flat regolith, no modifiers
	TileSlope   TileType = "slope"   // +1 move cost, wheel slip risk
	TileBoulder TileType = "boulder" // +0.5 move cost, wheel slip risk
	TilePSR     TileType = "psr"     // Permanently Shadowed Region: zero irradiance, +3 move cost
	TileRim     TileType = "rim"     // Crater rim, science +2
	TileCrater  TileType = "crater"  // Crater floor, science +1
	TileLander  TileType = "lander"  // The landing site (rover start)
)

// Tile is one cell of the surface map. Immutable after generation except
// for the Seen flag, which flips as the rover drives past.
type Tile struct {
	Type    TileType `json:"type"`    // Terrain classification
	Seen    bool     `json:"seen"`    // Has the rover observed this cell
	Science int      `json:"science"` // Richness score feeding spectrum challenges
}

// Grid is the full surface map, [row][col]. Generated once per mission seed
// and owned by the Mission afterwards.
type Grid [GridSize][GridSize]Tile

// Position is a grid coordinate. Always within bounds.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Mode is the mission's high-level operating state.
type Mode string

const (
	ModeNavigation  Mode = "navigation"    // Free to move / operate instruments
	ModeAnalyzing   Mode = "analyzing"     // A spectrum challenge is active
	ModeHibernating Mode = "hibernating"   // Systems down, awaiting a wake attempt
	ModeAwaitWake   Mode = "awaiting_wake" // Wake attempt failed; terminal
)

// InstrumentKind selects which onboard instrument an analysis intent uses.
type InstrumentKind string

const (
	InstrumentAPXS InstrumentKind = "apxs" // Alpha particle X-ray spectrometer: 3 power / 2 hours
	InstrumentLIBS InstrumentKind = "libs" // Laser-induced breakdown spectrometer: 4 power / 3 hours
)

// Element is one entry of the static spectral catalog.
type Element struct {
	Key  string `yaml:"key" json:"key"`   // Unique ID (e.g., "fe")
	Name string `yaml:"name" json:"name"` // Display name (e.g., "Iron")
}

// Objective is a mission goal. Done transitions false->true exactly once
// and never reverts.
type Objective struct {
	ID          string `json:"id"`          // Stable ID (e.g., "SULFUR")
	Description string `json:"description"` // Display text
	Done        bool   `json:"done"`        // Completion flag (monotone)
}

// SpectrumChallenge is one active analysis instance. Created per instrument
// use, discarded once every target element has been guessed or the rover
// abandons the analysis.
type SpectrumChallenge struct {
	ID      string   `json:"id"`      // Runtime UUID for client correlation
	Targets []string `json:"-"`       // Hidden element keys, shuffled; never serialized
	Guessed []string `json:"guessed"` // Ordered guesses so far, no duplicates
	Size    int      `json:"size"`    // len(Targets); safe to expose to the UI
}

// CommWindow is one recurring daily transmission window,
// [Start, Start+Duration) in hours-of-day.
type CommWindow struct {
	Start    int `yaml:"start" json:"start"`       // Opening hour-of-day, 0-23
	Duration int `yaml:"duration" json:"duration"` // Length in hours
}

// MissionBalance stores tuning variables loaded from 'mission.yaml'.
// These values control the power economy and minigame rewards.
type MissionBalance struct {
	IdleDrain        float64 `yaml:"idle_drain" json:"idle_drain"`                 // Power lost per clock advance
	ChargeScale      float64 `yaml:"charge_scale" json:"charge_scale"`             // Max passive charge per clock advance
	SlipChance       float64 `yaml:"slip_chance" json:"slip_chance"`               // Wheel slip probability on rough terrain
	SlipHours        int     `yaml:"slip_hours" json:"slip_hours"`                 // Extra hours lost to a slip
	SlipPower        float64 `yaml:"slip_power" json:"slip_power"`                 // Extra power lost to a slip
	PowerReserve     float64 `yaml:"power_reserve" json:"power_reserve"`           // Margin required above any action cost
	ScienceGainMin   float64 `yaml:"science_gain_min" json:"science_gain_min"`     // Minimum buffer reward per correct guess
	ScienceGainMax   float64 `yaml:"science_gain_max" json:"science_gain_max"`     // Maximum buffer reward per correct guess
	PotentialNearPSR float64 `yaml:"potential_near_psr" json:"potential_near_psr"` // Potential gain on or next to a PSR
	PotentialBase    float64 `yaml:"potential_base" json:"potential_base"`         // Potential gain elsewhere
}

// Config is the root configuration struct, mapping to the entire
// 'mission.yaml' file.
type Config struct {
	Balance     MissionBalance `yaml:"balance"`
	CommWindows []CommWindow   `yaml:"comm_windows"`
	Elements    []Element      `yaml:"elements"`
}
