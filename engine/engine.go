// SPDX-License-Identifier: MIT

package engine

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/surveyspace/cache"
	"github.com/katalvlaran/surveyspace/cluster"
	"github.com/katalvlaran/surveyspace/dataset"
	"github.com/katalvlaran/surveyspace/ellipsoid"
	"github.com/katalvlaran/surveyspace/embed"
)

// Stage labels recorded in the compute histogram.
const (
	StageLoad      = "load"
	StageEmbed     = "embed"
	StageGlobal    = "global_clusters"
	StageGroup     = "group_clusters"
	StageEllipsoid = "ellipsoids"
)

// Engine computes scenes. It is safe for concurrent use.
type Engine struct {
	src      dataset.Source
	results  *cache.Results
	metrics  *cache.Metrics
	log      zerolog.Logger
	embedOpt []embed.Option
	ellOpt   []ellipsoid.Option
	global   cluster.Profile
	group    cluster.Profile
	workers  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithCache enables result caching; the cache's metrics become the engine's.
func WithCache(r *cache.Results) Option {
	return func(e *Engine) {
		e.results = r
		if r != nil && r.Metrics() != nil {
			e.metrics = r.Metrics()
		}
	}
}

// WithMetrics records stage timings on m.
func WithMetrics(m *cache.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithEmbedOptions forwards options to embed.Project.
func WithEmbedOptions(opts ...embed.Option) Option {
	return func(e *Engine) {
		e.embedOpt = append(e.embedOpt, opts...)
	}
}

// WithEllipsoidOptions forwards options to ellipsoid.Fit.
func WithEllipsoidOptions(opts ...ellipsoid.Option) Option {
	return func(e *Engine) {
		e.ellOpt = append(e.ellOpt, opts...)
	}
}

// WithProfiles replaces the global and per-group clustering profiles.
// Panics if either profile is invalid.
func WithProfiles(global, group cluster.Profile) Option {
	global.Scope, group.Scope = cluster.ScopeGlobal, cluster.ScopeGroup
	if err := global.Validate(); err != nil {
		panic(err)
	}
	if err := group.Validate(); err != nil {
		panic(err)
	}
	return func(e *Engine) {
		e.global, e.group = global, group
	}
}

// WithWorkers bounds Precompute parallelism. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("engine: WithWorkers requires n >= 1")
	}
	return func(e *Engine) {
		e.workers = n
	}
}

// New returns an Engine reading from src.
func New(src dataset.Source, opts ...Option) *Engine {
	e := &Engine{
		src:     src,
		log:     zerolog.Nop(),
		global:  cluster.GlobalProfile(),
		group:   cluster.GroupProfile(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Manifest returns the manifest of the engine's source.
func (e *Engine) Manifest() *dataset.Manifest { return e.src.Manifest() }
