package game

import (
	"math/rand/v2"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestNewChallengeSize(t *testing.T) {
	catalog := DefaultConfig().Elements

	cases := []struct {
		science int
		want    int
	}{
		{0, 3},
		{1, 4}, // the lander tile scenario: min(3+1, 6) = 4
		{2, 5},
		{3, 6},
		{7, 6}, // capped at the catalog size
	}
	for _, tc := range cases {
		c := NewChallenge(testRNG(1337), catalog, tc.science)
		if len(c.Targets) != tc.want || c.Size != tc.want {
			t.Errorf("science %d: %d targets (size %d), want %d", tc.science, len(c.Targets), c.Size, tc.want)
		}
	}
}

func TestNewChallengeDistinctTargets(t *testing.T) {
	catalog := DefaultConfig().Elements

	for seed := uint64(0); seed < 50; seed++ {
		c := NewChallenge(testRNG(seed), catalog, 3)
		seen := map[string]bool{}
		for _, k := range c.Targets {
			if seen[k] {
				t.Fatalf("seed %d: duplicate target %q", seed, k)
			}
			seen[k] = true
			found := false
			for _, e := range catalog {
				if e.Key == k {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("seed %d: target %q not in catalog", seed, k)
			}
		}
	}
}

func TestGuessIdempotent(t *testing.T) {
	c := NewChallenge(testRNG(2), DefaultConfig().Elements, 0)
	key := c.Targets[0]

	first := c.Guess(key)
	if !first.Correct || first.Repeated {
		t.Fatalf("first guess of a target: %+v", first)
	}
	guessedLen := len(c.Guessed)

	second := c.Guess(key)
	if !second.Repeated {
		t.Fatal("repeated guess not flagged as repeat")
	}
	if len(c.Guessed) != guessedLen {
		t.Fatal("repeated guess mutated the guess list")
	}
}

func TestGuessDoneExactlyAtFullSet(t *testing.T) {
	c := NewChallenge(testRNG(3), DefaultConfig().Elements, 1) // 4 targets

	// Miss first: a non-target key must not advance completion.
	var miss string
	for _, e := range DefaultConfig().Elements {
		if !c.isTarget(e.Key) {
			miss = e.Key
			break
		}
	}
	if res := c.Guess(miss); res.Correct || res.Done {
		t.Fatalf("miss guess: %+v", res)
	}

	for i, key := range c.Targets {
		res := c.Guess(key)
		if !res.Correct {
			t.Fatalf("target %q scored incorrect", key)
		}
		wantDone := i == len(c.Targets)-1
		if res.Done != wantDone {
			t.Fatalf("after %d/%d targets, done = %v", i+1, len(c.Targets), res.Done)
		}
	}
}
