// SPDX-License-Identifier: MIT

package ellipsoid

import (
	"math"

	"github.com/katalvlaran/surveyspace/geom"
	"github.com/katalvlaran/surveyspace/matrix"
	"github.com/katalvlaran/surveyspace/matrix/ops"
)

const (
	// DefaultCoverage multiplies σ to get the half-axis length.
	DefaultCoverage = 2.2

	// DefaultMargin is added to every half-axis.
	DefaultMargin = 2.0

	// DefaultMinExtent floors every half-axis.
	DefaultMinExtent = 6.0

	// varianceFloor keeps σ real and non-zero for degenerate clusters.
	varianceFloor = 1e-9
)

// Params describes one cluster outline.
//   - Extents[k] is the half-length along Axes[k].
//   - Variances[k] is the covariance eigenvalue paired with Axes[k],
//     in descending order.
type Params struct {
	Cluster     int         `json:"cluster"`
	Count       int         `json:"count"`
	Center      geom.Vec3   `json:"center"`
	Extents     [3]float64  `json:"extents"`
	Axes        geom.Basis3 `json:"axes"`
	Orientation geom.Quat   `json:"orientation"`
	Variances   [3]float64  `json:"variances"`
	Converged   bool        `json:"converged"`
}

// Options tunes the extent formula.
type Options struct {
	Coverage  float64
	Margin    float64
	MinExtent float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns coverage 2.2, margin 2 and minimum extent 6.
func DefaultOptions() Options {
	return Options{Coverage: DefaultCoverage, Margin: DefaultMargin, MinExtent: DefaultMinExtent}
}

// WithCoverage sets the σ multiplier. Panics if k <= 0.
func WithCoverage(k float64) Option {
	if k <= 0 {
		panic("ellipsoid: WithCoverage requires k > 0")
	}
	return func(o *Options) {
		o.Coverage = k
	}
}

// WithMargin sets the additive margin. Panics if m < 0.
func WithMargin(m float64) Option {
	if m < 0 {
		panic("ellipsoid: WithMargin requires m >= 0")
	}
	return func(o *Options) {
		o.Margin = m
	}
}

// WithMinExtent sets the extent floor. Panics if e <= 0.
func WithMinExtent(e float64) Option {
	if e <= 0 {
		panic("ellipsoid: WithMinExtent requires e > 0")
	}
	return func(o *Options) {
		o.MinExtent = e
	}
}

// Fit groups points by labels and fits one ellipsoid per cluster.
// A point without a label (labels shorter than points) belongs to cluster 0.
// Complexity: O(n) plus a constant-size eigen-solve per cluster.
func Fit(points []geom.Point3D, labels []int, opts ...Option) map[int]Params {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	members := make(map[int][]geom.Vec3)
	for i, p := range points {
		cid := 0
		if i < len(labels) {
			cid = labels[i]
		}
		members[cid] = append(members[cid], p.Vec())
	}

	out := make(map[int]Params, len(members))
	for cid, pts := range members {
		prm := fitCluster(pts, o)
		prm.Cluster = cid
		out[cid] = prm
	}

	return out
}

// FitAssignment is Fit for an id-keyed assignment; unassigned ids go to cluster 0.
func FitAssignment(points []geom.Point3D, assignment map[string]int, opts ...Option) map[int]Params {
	labels := make([]int, len(points))
	for i, p := range points {
		labels[i] = assignment[p.ID]
	}

	return Fit(points, labels, opts...)
}

// FitPoints fits a single ellipsoid to pts.
func FitPoints(pts []geom.Vec3, opts ...Option) Params {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return fitCluster(pts, o)
}

// fitCluster implements the per-cluster fit.
// Implementation:
//   - Stage 1: centroid, then upper-triangle covariance sums / max(1, c-1).
//   - Stage 2: Jacobi with the default tolerance and sweep cap.
//   - Stage 3: extents from σ, axes normalized, third axis flipped for a
//     right-handed basis, quaternion from the basis.
func fitCluster(pts []geom.Vec3, o Options) Params {
	prm := Params{Count: len(pts)}
	if len(pts) == 0 {
		return prm
	}

	// Stage 1.
	var sum geom.Vec3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	c := float64(len(pts))
	center := geom.Vec3{sum[0] / c, sum[1] / c, sum[2] / c}
	prm.Center = center

	var sxx, sxy, sxz, syy, syz, szz float64
	for _, p := range pts {
		d := p.Sub(center)
		sxx += d[0] * d[0]
		sxy += d[0] * d[1]
		sxz += d[0] * d[2]
		syy += d[1] * d[1]
		syz += d[1] * d[2]
		szz += d[2] * d[2]
	}
	inv := 1 / math.Max(1, c-1)
	cov, _ := matrix.NewDenseRows([][]float64{
		{sxx * inv, sxy * inv, sxz * inv},
		{sxy * inv, syy * inv, syz * inv},
		{sxz * inv, syz * inv, szz * inv},
	})

	// Stage 2: a 3×3 input cannot fail the shape checks.
	eig, _ := ops.Jacobi(cov, ops.DefaultJacobiTol, ops.DefaultJacobiSweeps)
	prm.Converged = eig.Converged

	// Stage 3.
	for k := 0; k < 3; k++ {
		prm.Variances[k] = eig.Values[k]
		sigma := math.Sqrt(math.Max(eig.Values[k], varianceFloor))
		prm.Extents[k] = math.Max(o.MinExtent, sigma*o.Coverage+o.Margin)
		prm.Axes[k] = geom.Vec3{eig.Vectors[k][0], eig.Vectors[k][1], eig.Vectors[k][2]}.Normalize()
	}
	if !prm.Axes.RightHanded() {
		prm.Axes[2] = prm.Axes[2].Scale(-1)
	}
	prm.Orientation = geom.QuatFromBasis(prm.Axes)

	return prm
}
