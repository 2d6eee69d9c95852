// SPDX-License-Identifier: MIT

package cluster

import (
	"math"

	"github.com/katalvlaran/surveyspace/geom"
)

// minElbowPoints is the population below which clustering is forced to k=1.
const minElbowPoints = 3

// improveFloor keeps the improvement ratio finite when the previous WCSS is 0.
const improveFloor = 1e-9

// Config drives ChooseKByElbow.
type Config struct {
	KMin             int
	KMax             int
	SeedKey          string
	ImproveThreshold float64
}

// ChooseKByElbow selects the cluster count with a one-sided elbow rule.
// Implementation:
//   - Stage 1: n == 0 gives K = 0; n < 3 gives KMeans3D(k=1).
//   - Stage 2: kMax = clamp(KMax, 1, n); kMin = clamp(KMin, 1, kMax).
//   - Stage 3: for k = kMin..kMax run KMeans3D with the same seed key and
//     score it with WCSS. From the second candidate on, stop as soon as
//     (prev − score)/max(prev, 1e-9) < ImproveThreshold and keep the
//     previous result.
//
// Behavior highlights:
//   - kMin is always evaluated; no candidate beyond the stopping point is run.
//   - Every k gets a fresh stream from the same key, so candidates are
//     independent of evaluation order.
//
// Complexity: O((kMax−kMin+1) · cost(KMeans3D)).
func ChooseKByElbow(points []geom.Point3D, cfg Config, opts ...Option) Result {
	// Stage 1.
	n := len(points)
	if n == 0 {
		return Result{Assignment: map[string]int{}}
	}
	if n < minElbowPoints {
		return KMeans3D(points, 1, cfg.SeedKey, opts...)
	}

	// Stage 2.
	kMax := max(1, min(cfg.KMax, n))
	kMin := max(1, min(cfg.KMin, kMax))

	// Stage 3.
	var (
		best    Result
		found   bool
		prev    float64
		hasPrev bool
	)
	for k := kMin; k <= kMax; k++ {
		res := KMeans3D(points, k, cfg.SeedKey, opts...)
		score := res.WCSS
		if hasPrev {
			improve := (prev - score) / math.Max(prev, improveFloor)
			if improve < cfg.ImproveThreshold {
				break
			}
		}
		best, found = res, true
		prev, hasPrev = score, true
	}
	if !found {
		// Unreachable after clamping: kMin <= kMax always yields a candidate.
		return KMeans3D(points, 1, cfg.SeedKey, opts...)
	}

	return best
}
