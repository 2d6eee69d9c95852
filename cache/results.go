// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/katalvlaran/surveyspace/cluster"
)

// Results is the typed clustering cache used by the engine.
type Results struct {
	store   Store
	metrics *Metrics
	ttl     time.Duration
}

// NewResults wraps store. metrics may be nil; ttl <= 0 keeps entries until invalidated.
func NewResults(store Store, metrics *Metrics, ttl time.Duration) *Results {
	return &Results{store: store, metrics: metrics, ttl: ttl}
}

// Get looks up k and counts a hit or a miss.
func (r *Results) Get(ctx context.Context, k Key) (cluster.Result, bool, error) {
	raw, found, err := r.store.Get(ctx, k.String())
	if err != nil {
		return cluster.Result{}, false, fmt.Errorf("cache get %s: %w", k, err)
	}
	if !found {
		r.metrics.miss(k.Kind())
		return cluster.Result{}, false, nil
	}

	var res cluster.Result
	if err = json.Unmarshal(raw, &res); err != nil {
		r.metrics.miss(k.Kind())
		return cluster.Result{}, false, fmt.Errorf("cache decode %s: %w", k, err)
	}
	r.metrics.hit(k.Kind())

	return res, true, nil
}

// Put stores res under k.
func (r *Results) Put(ctx context.Context, k Key, res cluster.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", k, err)
	}
	if err = r.store.Set(ctx, k.String(), raw, r.ttl); err != nil {
		return fmt.Errorf("cache put %s: %w", k, err)
	}

	return nil
}

// Invalidate drops every entry of base (all modes, global and per-group)
// and returns the number of entries removed.
func (r *Results) Invalidate(ctx context.Context, base string) (int, error) {
	n, err := r.store.DeletePrefix(ctx, basePrefix(base))
	if err != nil {
		return 0, fmt.Errorf("cache invalidate %s: %w", base, err)
	}
	r.metrics.invalidated(n)

	return n, nil
}

// Metrics returns the collectors attached to r (possibly nil).
func (r *Results) Metrics() *Metrics { return r.metrics }
