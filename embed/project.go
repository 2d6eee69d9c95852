// SPDX-License-Identifier: MIT

package embed

import (
	"math"
	"strconv"

	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
	"github.com/katalvlaran/surveyspace/matrix"
	"github.com/katalvlaran/surveyspace/rng"
)

// Method labels reported with a Projection.
const (
	MethodPCA     = "PCA(JS)"
	MethodPCA2    = "PCA2(JS)"
	MethodCurve1D = "Curve1D(JS)"
	MethodEmpty   = "Empty"
	MethodPrePCA  = "PCA(precomputed)"
	MethodPreUMAP = "UMAP(precomputed)"
)

// Projection is the 3D embedding of one question.
//   - Points are in input row order.
//   - Basis is empty for d <= 1 and for precomputed modes.
//   - JitterSD is 0 when jitter was not applied; Distinct is the number
//     of distinct 1-decimal answer patterns (0 when not computed).
type Projection struct {
	Points   []geom.Point3D `json:"points"`
	Method   string         `json:"method"`
	Basis    Basis          `json:"basis"`
	JitterSD float64        `json:"jitter_sd"`
	Distinct int            `json:"distinct"`
}

// Project builds the feature matrix of t with the configured fill policy and
// embeds it in 3D; base is both the seed root and the fill-policy key.
// It never fails; see ProjectMatrix for the algorithm.
func Project(t *feature.Table, base string, opts ...Option) Projection {
	o := buildOptions(opts)
	X := feature.Build(t, o.Fill.Value(base))

	return project(X, t.IDs(), base, o)
}

// ProjectMatrix embeds an already normalized feature matrix.
// ids[i] names row i; a missing or empty id falls back to the row index.
// Implementation:
//   - Stage 1: branch on d (PCA, tilted plane, helix, or zeros).
//   - Stage 2: rescale every axis to the target RMS.
//   - Stage 3: add deterministic jitter keyed by (base, id).
//
// Complexity: O(n·d² + iters·d²) for d >= 2, O(n) otherwise, plus O(n·d)
// for the distinct-pattern count.
func ProjectMatrix(X *matrix.Dense, ids []string, base string, opts ...Option) Projection {
	return project(X, ids, base, buildOptions(opts))
}

func project(X *matrix.Dense, ids []string, base string, o Options) Projection {
	n, d := X.Shape()
	pts := make([]geom.Point3D, n)
	for i := range pts {
		pts[i].ID = rowID(ids, i)
	}
	p := Projection{Points: pts}

	// Stage 1.
	switch {
	case d >= 3:
		p.Method = MethodPCA
		p.Basis = TopComponents(X, rng.Key(base, "pca"), WithPowerIterations(o.PowerIterations))
		w0, w1, w2 := p.Basis.Axis(0), p.Basis.Axis(1), p.Basis.Axis(2)
		for i := 0; i < n; i++ {
			row := X.RawRow(i)
			pts[i].X = matrix.Dot(row, w0)
			pts[i].Y = matrix.Dot(row, w1)
			pts[i].Z = matrix.Dot(row, w2)
		}
	case d == 2:
		p.Method = MethodPCA2
		p.Basis = TopComponents(X, rng.Key(base, "pca2"), WithPowerIterations(o.PowerIterations))
		w0, w1 := p.Basis.Axis(0), p.Basis.Axis(1)
		for i := 0; i < n; i++ {
			row := X.RawRow(i)
			a := matrix.Dot(row, w0)
			b := matrix.Dot(row, w1)
			pts[i].X, pts[i].Y, pts[i].Z = a, b, planeA*a+planeB*b
		}
	case d == 1:
		p.Method = MethodCurve1D
		phase := HelixPhase(base)
		for i := 0; i < n; i++ {
			t := X.RawRow(i)[0]
			ang := phase + t*helixTurns*math.Pi
			pts[i].X = helixStretch * t
			pts[i].Y = o.HelixRadius * math.Sin(ang)
			pts[i].Z = o.HelixRadius * math.Cos(ang)
		}
	default:
		p.Method = MethodEmpty
		return p
	}

	// Stage 2.
	Rescale(pts, o.TargetRMS)

	// Stage 3.
	p.Distinct = DistinctPatterns(X)
	if o.Jitter {
		p.JitterSD = JitterBand(p.Distinct, n)
		for i := range pts {
			ApplyJitter(&pts[i], base, p.JitterSD)
		}
	}

	return p
}

// HelixPhase returns the d==1 phase angle of base in radians:
// (Hash32(base) mod 360) degrees.
func HelixPhase(base string) float64 {
	return float64(rng.Hash32(base)%360) * math.Pi / 180
}

// Rescale multiplies each axis so that its RMS over pts equals target.
// factor = target / (sqrt(Σv²/max(1,n)) + 1e-9), so an all-zero axis stays zero.
func Rescale(pts []geom.Point3D, target float64) {
	var sx, sy, sz float64
	for _, p := range pts {
		sx += p.X * p.X
		sy += p.Y * p.Y
		sz += p.Z * p.Z
	}
	n := math.Max(1, float64(len(pts)))
	fx := target / (math.Sqrt(sx/n) + rmsEpsilon)
	fy := target / (math.Sqrt(sy/n) + rmsEpsilon)
	fz := target / (math.Sqrt(sz/n) + rmsEpsilon)
	for i := range pts {
		pts[i].X *= fx
		pts[i].Y *= fy
		pts[i].Z *= fz
	}
}

func rowID(ids []string, i int) string {
	if i < len(ids) && ids[i] != "" {
		return ids[i]
	}

	return strconv.Itoa(i)
}
