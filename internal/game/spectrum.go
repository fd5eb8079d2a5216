/*
Package game
File: spectrum.go
Description:
    The spectrum analysis minigame. Each instrument use produces a hidden
    set of target elements scaled by the tile's science richness; the
    operator guesses elements one at a time until the full set is found.

    Scoring side effects (buffer and potential gains) live in mission.go;
    this file only owns the challenge lifecycle.
*/

package game

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// NewChallenge rolls a fresh spectrum challenge for a tile of the given
// science value. Target count is min(3+science, 6) distinct elements drawn
// in shuffled order from the catalog; richer tiles hide more lines.
func NewChallenge(rng *rand.Rand, catalog []Element, science int) *SpectrumChallenge {
	if science < 0 {
		science = 0
	}
	size := 3 + science
	if size > len(catalog) {
		size = len(catalog)
	}

	// Shuffle a copy of the catalog keys and take the prefix.
	keys := make([]string, len(catalog))
	for i, e := range catalog {
		keys[i] = e.Key
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return &SpectrumChallenge{
		ID:      uuid.NewString(),
		Targets: keys[:size],
		Guessed: []string{},
		Size:    size,
	}
}

// GuessResult reports the outcome of a single guess.
type GuessResult struct {
	Correct  bool // The key is in the hidden target set
	Done     bool // Every target has now been guessed
	Repeated bool // The key was already guessed; state unchanged
}

// Guess records one element guess. Repeating an already-guessed key is a
// no-op. Done flips true exactly when the last remaining target is hit.
func (c *SpectrumChallenge) Guess(key string) GuessResult {
	for _, g := range c.Guessed {
		if g == key {
			return GuessResult{Correct: c.isTarget(key), Repeated: true, Done: c.solved()}
		}
	}

	c.Guessed = append(c.Guessed, key)

	res := GuessResult{Correct: c.isTarget(key)}
	res.Done = c.solved()
	return res
}

func (c *SpectrumChallenge) isTarget(key string) bool {
	for _, t := range c.Targets {
		if t == key {
			return true
		}
	}
	return false
}

// solved reports whether every target element has been guessed.
func (c *SpectrumChallenge) solved() bool {
	for _, t := range c.Targets {
		found := false
		for _, g := range c.Guessed {
			if g == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
