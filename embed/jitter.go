// SPDX-License-Identifier: MIT

package embed

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/surveyspace/geom"
	"github.com/katalvlaran/surveyspace/matrix"
	"github.com/katalvlaran/surveyspace/rng"
)

// Jitter standard deviations, from few distinct answer patterns to many.
const (
	JitterSDFew      = 3.5 // distinct <= 3
	JitterSDSome     = 2.6 // distinct <= 6
	JitterSDSeveral  = 1.8 // distinct <= 10
	JitterSDSparse   = 1.5 // distinct/n < 0.08
	JitterSDModerate = 1.0 // distinct/n < 0.14
	JitterSDDense    = 0.6
)

// JitterBand maps the number of distinct answer patterns among n rows to a
// jitter standard deviation. Fewer patterns give a larger deviation.
func JitterBand(distinct, n int) float64 {
	ratio := float64(distinct) / math.Max(1, float64(n))
	switch {
	case distinct <= 3:
		return JitterSDFew
	case distinct <= 6:
		return JitterSDSome
	case distinct <= 10:
		return JitterSDSeveral
	case ratio < 0.08:
		return JitterSDSparse
	case ratio < 0.14:
		return JitterSDModerate
	default:
		return JitterSDDense
	}
}

// DistinctPatterns counts distinct rows of X after rounding every value to
// one decimal (half-way values round up).
// Complexity: O(n·d) time, O(n·d) space.
func DistinctPatterns(X *matrix.Dense) int {
	n := X.Rows()
	seen := make(map[string]struct{}, n)
	var b strings.Builder
	var buf []byte
	for i := 0; i < n; i++ {
		b.Reset()
		for j, v := range X.RawRow(i) {
			if j > 0 {
				b.WriteByte(',')
			}
			buf = strconv.AppendFloat(buf[:0], quantize(v), 'g', -1, 64)
			b.Write(buf)
		}
		seen[b.String()] = struct{}{}
	}

	return len(seen)
}

func quantize(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// JitterKey returns the seed key of the jitter stream for respondent id.
func JitterKey(base, id string) string {
	return rng.Key(base, "jitter", id)
}

// JitterVector returns the offset added to respondent id: three normal
// deviates (x, y, z in that order) from its own stream, scaled by sd.
func JitterVector(base, id string, sd float64) geom.Vec3 {
	s := rng.FromKey(JitterKey(base, id))
	var v geom.Vec3
	for k := range v {
		v[k] = s.Normal() * sd
	}

	return v
}

// ApplyJitter adds JitterVector(base, p.ID, sd) to p.
func ApplyJitter(p *geom.Point3D, base string, sd float64) {
	v := JitterVector(base, p.ID, sd)
	p.X += v[0]
	p.Y += v[1]
	p.Z += v[2]
}
