// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyspace/rng"
)

// Scope selects how a Profile derives its upper bound from the population.
type Scope int

const (
	// ScopeGlobal clusters the whole population: kMax = min(MaxK, max(1, ⌊√n⌋)).
	ScopeGlobal Scope = iota

	// ScopeGroup clusters one subgroup: kMax = min(MaxK, max(MinK, ⌊√n⌋)).
	ScopeGroup
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeGroup:
		return "group"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Profile is a clustering configuration for one scope.
type Profile struct {
	Scope            Scope   `yaml:"-"`
	MinK             int     `yaml:"min_k"`
	MaxK             int     `yaml:"max_k"`
	ImproveThreshold float64 `yaml:"improve_threshold"`
}

// GlobalProfile returns the whole-population defaults: k in [4,10], threshold 0.16.
func GlobalProfile() Profile {
	return Profile{Scope: ScopeGlobal, MinK: 4, MaxK: 10, ImproveThreshold: 0.16}
}

// GroupProfile returns the per-group defaults: k in [2,6], threshold 0.22.
func GroupProfile() Profile {
	return Profile{Scope: ScopeGroup, MinK: 2, MaxK: 6, ImproveThreshold: 0.22}
}

// Bounds returns the [kMin, kMax] candidate range for a population of n.
func (p Profile) Bounds(n int) (kMin, kMax int) {
	root := int(math.Floor(math.Sqrt(float64(n))))
	floor := 1
	if p.Scope == ScopeGroup {
		floor = p.MinK
	}
	kMax = min(p.MaxK, max(floor, root))
	kMin = min(p.MinK, kMax)

	return kMin, kMax
}

// Config builds the elbow configuration for n points and seedKey.
func (p Profile) Config(n int, seedKey string) Config {
	kMin, kMax := p.Bounds(n)

	return Config{KMin: kMin, KMax: kMax, SeedKey: seedKey, ImproveThreshold: p.ImproveThreshold}
}

// Validate reports structurally impossible profiles.
func (p Profile) Validate() error {
	switch {
	case p.MinK < 1:
		return fmt.Errorf("%s min_k=%d: %w", p.Scope, p.MinK, ErrInvalidProfile)
	case p.MaxK < p.MinK:
		return fmt.Errorf("%s max_k=%d < min_k=%d: %w", p.Scope, p.MaxK, p.MinK, ErrInvalidProfile)
	case !(p.ImproveThreshold > 0 && p.ImproveThreshold < 1):
		return fmt.Errorf("%s improve_threshold=%g: %w", p.Scope, p.ImproveThreshold, ErrInvalidProfile)
	}

	return nil
}

// GlobalSeedKey returns "{base}|global".
func GlobalSeedKey(base string) string { return rng.Key(base, "global") }

// GroupSeedKey returns "{base}|{group}".
func GroupSeedKey(base, group string) string { return rng.Key(base, group) }
