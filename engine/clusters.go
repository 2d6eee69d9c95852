// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/surveyspace/cache"
	"github.com/katalvlaran/surveyspace/cluster"
	"github.com/katalvlaran/surveyspace/geom"
)

// GlobalClusters clusters every point of em with the global profile.
// Results are cached under "base|mode".
func (e *Engine) GlobalClusters(ctx context.Context, em *Embedding) (cluster.Result, error) {
	pts := em.Projection.Points
	key := cache.GlobalKey(em.Base(), em.Mode.String())

	return e.clusters(ctx, key, StageGlobal, func() cluster.Result {
		return cluster.ChooseKByElbow(pts, e.global.Config(len(pts), cluster.GlobalSeedKey(em.Base())))
	})
}

// GroupClusters clusters the points of one group with the group profile.
// Results are cached under "base|mode::group".
// Errors: ErrUnknownGroup when no row belongs to group.
func (e *Engine) GroupClusters(ctx context.Context, em *Embedding, group string) (cluster.Result, error) {
	pts := groupPoints(em, group)
	if len(pts) == 0 {
		return cluster.Result{}, fmt.Errorf("group %q in %s: %w", group, em.Base(), ErrUnknownGroup)
	}
	key := cache.GroupKey(em.Base(), em.Mode.String(), group)

	return e.clusters(ctx, key, StageGroup, func() cluster.Result {
		return cluster.ChooseKByElbow(pts, e.group.Config(len(pts), cluster.GroupSeedKey(em.Base(), group)))
	})
}

// Groups returns the distinct non-empty groups of em, sorted.
func Groups(em *Embedding) []string {
	seen := make(map[string]struct{})
	for _, g := range em.Table.Groups() {
		if g != "" {
			seen[g] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

func groupPoints(em *Embedding, group string) []geom.Point3D {
	var pts []geom.Point3D
	for i, p := range em.Projection.Points {
		if em.Table.Group(i) == group {
			pts = append(pts, p)
		}
	}

	return pts
}

// clusters serves key from the cache or computes and stores it. Cache
// failures are logged and never fail the call.
func (e *Engine) clusters(ctx context.Context, key cache.Key, stage string, compute func() cluster.Result) (cluster.Result, error) {
	if err := ctx.Err(); err != nil {
		return cluster.Result{}, err
	}

	if e.results != nil {
		res, found, err := e.results.Get(ctx, key)
		switch {
		case err != nil:
			e.log.Warn().Err(err).Str("key", key.String()).Msg("Cluster cache read failed")
		case found:
			e.log.Debug().Str("key", key.String()).Int("k", res.K).Msg("Cluster cache hit")
			return res, nil
		}
	}

	start := time.Now()
	res := compute()
	e.metrics.ObserveCompute(stage, time.Since(start))
	e.log.Debug().Str("key", key.String()).Int("k", res.K).Float64("wcss", res.WCSS).Msg("Clustered")

	if e.results != nil {
		if err := e.results.Put(ctx, key, res); err != nil {
			e.log.Warn().Err(err).Str("key", key.String()).Msg("Cluster cache write failed")
		}
	}

	return res, nil
}

// Invalidate drops every cached result of base.
func (e *Engine) Invalidate(ctx context.Context, base string) (int, error) {
	if e.results == nil {
		return 0, nil
	}
	n, err := e.results.Invalidate(ctx, base)
	if err != nil {
		return 0, err
	}
	e.log.Info().Str("base", base).Int("entries", n).Msg("Invalidated cluster cache")

	return n, nil
}
