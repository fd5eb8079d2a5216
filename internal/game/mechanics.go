/*
Package game
File: mechanics.go
Description:
    Contains the "Physics" and rules helper functions: solar irradiance,
    communication windows, movement and instrument costs, transmission
    pricing, and the hibernation wake model.

    Everything here is pure; state mutation happens in mission.go.
*/

package game

import "math"

// Irradiance returns the solar input at the given mission hour as a percent,
// 0..100. PSR tiles are permanently shadowed and always yield 0.
//
// The curve is a single sine arc across the whole mission: near zero at
// landing, peaking mid-campaign, fading to zero before the deadline.
func Irradiance(hour int, tile TileType) float64 {
	if tile == TilePSR {
		return 0
	}

	t := float64(hour) / float64(TotalHours)
	raw := math.Sin(math.Pi * (0.9*t + 0.05))

	// Clamp: the shifted arc dips slightly negative at the extremes.
	if raw < 0 {
		raw = 0
	}
	if raw > 1 {
		raw = 1
	}
	return raw * 100
}

// CommWindowOpen reports whether the relay is overhead at the given mission
// hour. The window pattern repeats every 24 hours regardless of mission day.
func CommWindowOpen(hour int, windows []CommWindow) bool {
	hod := hour % 24
	for _, w := range windows {
		if hod >= w.Start && hod < w.Start+w.Duration {
			return true
		}
	}
	return false
}

// MoveCost returns the power price of driving onto the given tile.
// Base 1, plus terrain surcharges.
func MoveCost(dest TileType) float64 {
	cost := 1.0
	switch dest {
	case TileSlope:
		cost += 1.0
	case TileBoulder:
		cost += 0.5
	case TilePSR:
		cost += 3.0
	}
	return cost
}

// SlipRisk reports whether the destination terrain can trigger a wheel slip.
func SlipRisk(dest TileType) bool {
	return dest == TileSlope || dest == TileBoulder
}

// InstrumentCost returns the power and time price of one instrument use.
func InstrumentCost(kind InstrumentKind) (power float64, hours int) {
	switch kind {
	case InstrumentLIBS:
		return 4, 3
	default: // APXS
		return 3, 2
	}
}

// TransmitPowerCost prices an uplink of the given buffer level.
// Capped at 5: the radio draws the same once the session is long enough.
func TransmitPowerCost(buffer float64) float64 {
	cost := math.Ceil(buffer / 20)
	return math.Min(5, cost)
}

// TransmitHours returns the session length for the given buffer level.
func TransmitHours(buffer float64) int {
	return 1 + int(math.Floor(buffer/40))
}

// WakeProbability computes the chance a hibernating rover revives.
// Flat ground gives a better thermal posture than rough terrain.
// Skill (0..1) comes from the restart timing sequence.
func WakeProbability(skill float64, tile TileType) float64 {
	base := 0.35
	switch tile {
	case TileSlope, TileBoulder, TileCrater, TilePSR:
		base = 0.15
	}
	return math.Min(0.85, base+skill*0.5)
}

// TimingSkill converts a restart-sequence stop position into a skill value
// 0..1. Stop and center share a normalized 0..100 scale; a perfect stop on
// center scores 1.
func TimingSkill(stop, center float64) float64 {
	if center == 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(stop-center)/center)
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
