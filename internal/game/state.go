/*
Package game
File: state.go
Description:
    Configuration loading for the mission server.

    Tuning values (power economy, comm windows, the spectral catalog) live in
    'mission.yaml'. The file is optional: if it is missing, the compiled
    defaults below are used, so the server always boots with a playable
    balance sheet.
*/

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the compiled-in mission balance. mission.yaml
// overrides it field-for-field when present.
func DefaultConfig() Config {
	return Config{
		Balance: MissionBalance{
			IdleDrain:        0.15,
			ChargeScale:      2.0,
			SlipChance:       0.15,
			SlipHours:        2,
			SlipPower:        2.0,
			PowerReserve:     1.0,
			ScienceGainMin:   5.0,
			ScienceGainMax:   10.0,
			PotentialNearPSR: 6.0,
			PotentialBase:    2.0,
		},
		CommWindows: []CommWindow{
			{Start: 2, Duration: 2},
			{Start: 10, Duration: 2},
			{Start: 18, Duration: 2},
		},
		Elements: []Element{
			{Key: "fe", Name: "Iron"},
			{Key: "ti", Name: "Titanium"},
			{Key: "si", Name: "Silicon"},
			{Key: "s", Name: "Sulfur"},
			{Key: "h", Name: "Hydrogen"},
			{Key: "o", Name: "Oxygen"},
		},
	}
}

// LoadConfig reads 'mission.yaml' from the given path and merges it over the
// defaults. A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects configurations the simulation cannot honor.
func (c Config) validate() error {
	if len(c.Elements) < 3 {
		return fmt.Errorf("element catalog needs at least 3 entries, got %d", len(c.Elements))
	}
	for _, w := range c.CommWindows {
		if w.Start < 0 || w.Start > 23 {
			return fmt.Errorf("comm window start %d out of range", w.Start)
		}
		if w.Duration < 1 {
			return fmt.Errorf("comm window duration %d must be positive", w.Duration)
		}
	}
	if c.Balance.ScienceGainMax < c.Balance.ScienceGainMin {
		return fmt.Errorf("science_gain_max below science_gain_min")
	}
	return nil
}
