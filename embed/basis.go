// SPDX-License-Identifier: MIT

package embed

import (
	"github.com/katalvlaran/surveyspace/matrix"
	"github.com/katalvlaran/surveyspace/matrix/ops"
	"github.com/katalvlaran/surveyspace/rng"
)

// MaxComponents is the number of basis vectors extracted for d >= 3.
const MaxComponents = 3

// Basis is an approximate principal basis. Vectors[k] has length d and
// Values[k] is its Rayleigh-quotient eigenvalue estimate; entries are in
// extraction order, which is descending variance.
type Basis struct {
	Vectors [][]float64 `json:"vectors"`
	Values  []float64   `json:"values"`
}

// Len returns the number of extracted vectors.
func (b Basis) Len() int { return len(b.Vectors) }

// Axis returns basis vector k, or the first vector when k was not extracted.
// It returns nil for an empty basis.
func (b Basis) Axis(k int) []float64 {
	if len(b.Vectors) == 0 {
		return nil
	}
	if k < len(b.Vectors) {
		return b.Vectors[k]
	}

	return b.Vectors[0]
}

// TopComponents extracts up to MaxComponents principal directions of the
// centered matrix X.
// Implementation:
//   - Stage 1: C = Covariance(X), divisor max(1, n-1).
//   - Stage 2: for c in [0, min(3,d)): draw a seed vector with d values
//     uniform in [-1,1) from the stream of seedKey, power-iterate on C.
//   - Stage 3: deflate C by the found pair before the next component.
//
// Behavior highlights:
//   - One stream serves all components, so component c depends on the
//     draws of components 0..c-1.
//   - d == 0 or a nil X gives an empty Basis.
//
// Complexity: O(n·d² + iters·d²).
func TopComponents(X *matrix.Dense, seedKey string, opts ...Option) Basis {
	o := buildOptions(opts)
	if X == nil || X.Cols() == 0 {
		return Basis{}
	}

	// Stage 1.
	C, err := matrix.Covariance(X)
	if err != nil {
		return Basis{}
	}

	d := X.Cols()
	k := d
	if k > MaxComponents {
		k = MaxComponents
	}
	stream := rng.FromKey(seedKey)
	b := Basis{Vectors: make([][]float64, 0, k), Values: make([]float64, 0, k)}
	for c := 0; c < k; c++ {
		// Stage 2.
		seed := make([]float64, d)
		for i := range seed {
			seed[i] = stream.Symmetric()
		}
		v, value, err := ops.PowerIteration(C, seed, o.PowerIterations)
		if err != nil {
			break
		}
		b.Vectors = append(b.Vectors, v)
		b.Values = append(b.Values, value)

		// Stage 3.
		if err = ops.Deflate(C, v, value); err != nil {
			break
		}
	}

	return b
}
