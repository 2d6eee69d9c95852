// SPDX-License-Identifier: MIT

package embed

import (
	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/matrix/ops"
)

const (
	// DefaultTargetRMS is the per-axis root-mean-square after rescaling.
	DefaultTargetRMS = 30.0

	// DefaultHelixRadius is the radius of the d==1 helix before rescaling.
	DefaultHelixRadius = 18.0

	// helixStretch scales t along x for the d==1 helix.
	helixStretch = 26.0

	// helixTurns is the angle span, in units of π, covered by t in [-1,1].
	helixTurns = 2.2

	// planeA and planeB tilt the d==2 plane: z = planeA·a + planeB·b.
	planeA = 0.35
	planeB = 0.20

	// rmsEpsilon keeps the rescale factor finite for an all-zero axis.
	rmsEpsilon = 1e-9
)

// Options configures Project. Use DefaultOptions and the With* helpers.
type Options struct {
	TargetRMS       float64
	PowerIterations int
	HelixRadius     float64
	Jitter          bool
	Fill            feature.FillPolicy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the standard projection settings.
func DefaultOptions() Options {
	return Options{
		TargetRMS:       DefaultTargetRMS,
		PowerIterations: ops.DefaultPowerIterations,
		HelixRadius:     DefaultHelixRadius,
		Jitter:          true,
		Fill:            feature.DefaultFillPolicy(),
	}
}

// WithTargetRMS sets the per-axis RMS after rescaling. Panics if v <= 0.
func WithTargetRMS(v float64) Option {
	if v <= 0 {
		panic("embed: WithTargetRMS requires v > 0")
	}
	return func(o *Options) {
		o.TargetRMS = v
	}
}

// WithPowerIterations sets the fixed power-iteration step count. Panics if n < 1.
func WithPowerIterations(n int) Option {
	if n < 1 {
		panic("embed: WithPowerIterations requires n >= 1")
	}
	return func(o *Options) {
		o.PowerIterations = n
	}
}

// WithHelixRadius sets the d==1 helix radius. Panics if r <= 0.
func WithHelixRadius(r float64) Option {
	if r <= 0 {
		panic("embed: WithHelixRadius requires r > 0")
	}
	return func(o *Options) {
		o.HelixRadius = r
	}
}

// WithoutJitter disables the deterministic jitter step.
func WithoutJitter() Option {
	return func(o *Options) {
		o.Jitter = false
	}
}

// WithFillPolicy replaces the fill policy used when building the feature matrix.
func WithFillPolicy(p feature.FillPolicy) Option {
	return func(o *Options) {
		o.Fill = p
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
