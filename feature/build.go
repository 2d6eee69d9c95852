// SPDX-License-Identifier: MIT

package feature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/surveyspace/matrix"
)

// RangeEpsilon is the column spread below which a column is treated as constant.
const RangeEpsilon = 1e-9

// Build produces the normalized, centered n×d feature matrix of t.
// Implementation:
//   - Stage 1: For each column coerce every cell with the fill value.
//   - Stage 2: Column min/max; a spread < RangeEpsilon leaves the column zero.
//   - Stage 3: Scale (v-mid)/half and clamp to [-1,1].
//   - Stage 4: Subtract column means (matrix.CenterColumnsInPlace).
//
// Behavior highlights:
//   - Pure: t is not modified, the result is a fresh matrix.
//   - Never fails; n==0 or d==0 gives a zero-size matrix.
//
// Complexity: O(n·d).
func Build(t *Table, fill float64) *matrix.Dense {
	n, d := t.Len(), t.Width()
	X, _ := matrix.NewDense(n, d) // n,d >= 0 by construction

	col := make([]float64, n)
	var i, j int
	for j = 0; j < d; j++ {
		// Stage 1.
		mn, mx := math.Inf(1), math.Inf(-1)
		for i = 0; i < n; i++ {
			v := Coerce(t.cells[j][i], fill)
			col[i] = v
			if v < mn {
				mn = v
			}
			if v > mx {
				mx = v
			}
		}

		// Stage 2: degenerate (or empty) column stays zero.
		if math.IsInf(mn, 0) || math.IsInf(mx, 0) || math.Abs(mx-mn) < RangeEpsilon {
			continue
		}

		// Stage 3.
		mid := (mx + mn) / 2
		half := (mx - mn) / 2
		for i = 0; i < n; i++ {
			v := (col[i] - mid) / half
			if v > 1 {
				v = 1
			}
			if v < -1 {
				v = -1
			}
			X.RawRow(i)[j] = v
		}
	}

	// Stage 4.
	matrix.CenterColumnsInPlace(X)

	return X
}

// Verify checks the normalization invariant of a matrix produced by Build:
// every column has |mean| <= tol, a spread max-min <= 2+tol, and no NaN/Inf.
// It is a diagnostic for tests and tooling; Build itself never needs it.
func Verify(X *matrix.Dense, tol float64) error {
	if X == nil {
		return fmt.Errorf("Verify: %w", matrix.ErrNilMatrix)
	}
	n, d := X.Shape()
	for j := 0; j < d; j++ {
		var sum float64
		mn, mx := math.Inf(1), math.Inf(-1)
		for i := 0; i < n; i++ {
			v := X.RawRow(i)[j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("Verify: column %d row %d is %v: %w", j, i, v, ErrNotNormalized)
			}
			sum += v
			mn = math.Min(mn, v)
			mx = math.Max(mx, v)
		}
		if n == 0 {
			continue
		}
		if mean := sum / float64(n); math.Abs(mean) > tol {
			return fmt.Errorf("Verify: column %d mean %g: %w", j, mean, ErrNotNormalized)
		}
		if mx-mn > 2+tol {
			return fmt.Errorf("Verify: column %d spread %g: %w", j, mx-mn, ErrNotNormalized)
		}
	}

	return nil
}
