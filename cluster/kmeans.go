// SPDX-License-Identifier: MIT

package cluster

import (
	"math"

	"github.com/katalvlaran/surveyspace/geom"
	"github.com/katalvlaran/surveyspace/rng"
)

// DefaultMaxIterations caps Lloyd iterations.
const DefaultMaxIterations = 25

// Result is a clustering of a point set.
//   - Labels[i] is the cluster of points[i]; Assignment maps point ids to
//     the same indices (the last occurrence wins for duplicate ids).
//   - Every index is in [0, K).
//   - Iterations is the number of Lloyd passes; WCSS scores the final state.
type Result struct {
	Assignment map[string]int `json:"assignment"`
	Labels     []int          `json:"labels"`
	K          int            `json:"k"`
	Centers    []geom.Vec3    `json:"centers"`
	Iterations int            `json:"iterations"`
	WCSS       float64        `json:"wcss"`
}

// Options configures KMeans3D.
type Options struct {
	MaxIterations int
	Hook          func(iter int, wcss float64)
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIterations overrides the Lloyd iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("cluster: WithMaxIterations requires n >= 1")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithIterationHook registers fn to observe the WCSS after every Lloyd
// iteration (assignment plus center update). Panics on nil.
func WithIterationHook(fn func(iter int, wcss float64)) Option {
	if fn == nil {
		panic("cluster: WithIterationHook(nil)")
	}
	return func(o *Options) {
		o.Hook = fn
	}
}

func buildOptions(opts []Option) Options {
	o := Options{MaxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// KMeans3D clusters points into k groups.
// Implementation:
//   - Stage 1: clamp k to [1, n]; n == 0 returns K = 0.
//   - Stage 2: k-means++ seeding from rng.FromKey(seedKey).
//   - Stage 3: Lloyd iterations until no label changes or the cap is hit.
//
// Behavior highlights:
//   - Never fails and never retains points.
//   - The first pass always counts as a change, so at least one full
//     assignment and center update happens.
//
// Complexity: O(k·n) per seeding step and per Lloyd pass.
func KMeans3D(points []geom.Point3D, k int, seedKey string, opts ...Option) Result {
	o := buildOptions(opts)
	n := len(points)
	if n == 0 {
		return Result{Assignment: map[string]int{}}
	}

	// Stage 1.
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	pos := make([]geom.Vec3, n)
	for i, p := range points {
		pos[i] = p.Vec()
	}

	// Stage 2.
	centers := seedCenters(pos, k, rng.FromKey(seedKey))

	// Stage 3.
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	sums := make([]geom.Vec3, k)
	counts := make([]int, k)
	iter := 0
	for changed := true; changed && iter < o.MaxIterations; iter++ {
		changed = false
		for j := range sums {
			sums[j] = geom.Vec3{}
			counts[j] = 0
		}
		for i, p := range pos {
			best := nearest(p, centers)
			if labels[i] != best {
				changed = true
			}
			labels[i] = best
			sums[best] = sums[best].Add(p)
			counts[best]++
		}
		for j := range centers {
			if counts[j] > 0 {
				c := float64(counts[j])
				centers[j] = geom.Vec3{sums[j][0] / c, sums[j][1] / c, sums[j][2] / c}
			}
		}
		if o.Hook != nil {
			o.Hook(iter+1, labelWCSS(pos, labels, centers))
		}
	}

	assign := make(map[string]int, n)
	for i, p := range points {
		assign[p.ID] = labels[i]
	}

	return Result{
		Assignment: assign,
		Labels:     labels,
		K:          k,
		Centers:    centers,
		Iterations: iter,
		WCSS:       WCSS(points, assign, centers),
	}
}

// seedCenters picks k initial centers with k-means++ roulette selection.
// The first center is Intn(n); each next one is drawn with probability
// proportional to the squared distance to the nearest chosen center. A zero
// total distance fills the remaining slots with copies of the first center.
func seedCenters(pos []geom.Vec3, k int, s *rng.Stream) []geom.Vec3 {
	n := len(pos)
	centers := make([]geom.Vec3, 0, k)
	centers = append(centers, pos[s.Intn(n)])

	dists := make([]float64, n)
	for len(centers) < k {
		var sum float64
		for i, p := range pos {
			best := math.Inf(1)
			for _, c := range centers {
				if d := geom.Dist2(p, c); d < best {
					best = d
				}
			}
			dists[i] = best
			sum += best
		}
		if sum == 0 {
			for len(centers) < k {
				centers = append(centers, centers[0])
			}
			break
		}

		r := s.Float64() * sum
		idx := 0
		for ; idx < n; idx++ {
			r -= dists[idx]
			if r <= 0 {
				break
			}
		}
		if idx > n-1 {
			idx = n - 1
		}
		centers = append(centers, pos[idx])
	}

	return centers
}

// nearest returns the index of the closest center; ties keep the lowest index.
func nearest(p geom.Vec3, centers []geom.Vec3) int {
	best, bestD := 0, math.Inf(1)
	for j, c := range centers {
		if d := geom.Dist2(p, c); d < bestD {
			best, bestD = j, d
		}
	}

	return best
}

// WCSS returns Σ‖p − center(p)‖² where center(p) is centers[assignment[p.ID]].
// A missing id counts as cluster 0 and an out-of-range index uses centers[0].
// An empty center list scores 0.
func WCSS(points []geom.Point3D, assignment map[string]int, centers []geom.Vec3) float64 {
	if len(centers) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		j := assignment[p.ID] // missing -> 0
		if j < 0 || j >= len(centers) {
			j = 0
		}
		sum += geom.Dist2(p.Vec(), centers[j])
	}

	return sum
}

func labelWCSS(pos []geom.Vec3, labels []int, centers []geom.Vec3) float64 {
	var sum float64
	for i, p := range pos {
		sum += geom.Dist2(p, centers[labels[i]])
	}

	return sum
}
