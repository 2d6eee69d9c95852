// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the embedding pipeline relies on
//     (per-column min/max, centering, sample covariance) as deterministic kernels
//     over the row-major Dense buffer.
//
// Exposed API:
//   - ColumnRange(X)   -> (mins, maxs)   // per-column extrema
//   - CenterColumns(X) -> (Xc, means)    // subtract per-column mean (copy)
//   - Covariance(X)    -> Cov            // (Xᵀ X)/max(1, r-1) of ALREADY-CENTERED columns
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; upper triangle accumulated, then mirrored.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops.

package matrix

import "math"

const (
	opColumnRange   = "ColumnRange"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnRange returns the minimum and maximum of every column.
// Columns of an empty population report (+Inf, -Inf).
// Complexity: Time O(r*c), Space O(c).
func ColumnRange(X *Dense) (mins, maxs []float64, err error) {
	if X == nil {
		return nil, nil, matrixErrorf(opColumnRange, ErrNilMatrix)
	}
	r, c := X.r, X.c
	mins = make([]float64, c)
	maxs = make([]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		mins[j] = math.Inf(1)
		maxs[j] = math.Inf(-1)
	}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v := X.data[base+j]
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}

// CenterColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil); zero-size returns a copy and zero means.
//   - Stage 2: Accumulate column sums in a deterministic row pass.
//   - Stage 3: Divide by max(1, r) and subtract into a fresh copy.
//
// Returns:
//   - *Dense: centered copy (X is never mutated).
//   - []float64: column means (len=c).
//
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if X == nil {
		return nil, nil, matrixErrorf(opCenterColumns, ErrNilMatrix)
	}
	Xc := X.CloneDense()
	means := CenterColumnsInPlace(Xc)

	return Xc, means, nil
}

// CenterColumnsInPlace is the mutating kernel behind CenterColumns.
// The divisor is max(1, r) so an empty population yields zero means.
func CenterColumnsInPlace(X *Dense) []float64 {
	r, c := X.r, X.c
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return means
	}

	// Stage 2 (Execute): column sums, rows in order.
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}

	// Stage 3 (Apply).
	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			X.data[base+j] -= means[j]
		}
	}

	return means
}

// Covariance computes the c×c sample covariance of the columns of X,
// assuming the columns are already centered (the feature builder guarantees it).
// Implementation:
//   - Stage 1: Validate X; c==0 yields a legal 0×0 matrix.
//   - Stage 2: Accumulate the upper triangle Σ_i x_ia·x_ib in row order.
//   - Stage 3: Scale by 1/max(1, r-1) and mirror into the lower triangle.
//
// Behavior highlights:
//   - Symmetric by construction (lower triangle is a copy, not a recomputation).
//   - r<2 is NOT an error: the divisor floor makes a single row yield its
//     outer product and an empty population yield zeros.
//
// Complexity: Time O(r*c²), Space O(c²).
func Covariance(X *Dense) (*Dense, error) {
	// Stage 1 (Validate).
	if X == nil {
		return nil, matrixErrorf(opCovariance, ErrNilMatrix)
	}
	r, c := X.r, X.c
	C := &Dense{r: c, c: c, data: make([]float64, c*c)}
	if c == 0 {
		return C, nil
	}

	// Stage 2 (Accumulate): upper triangle only.
	var i, a, b int
	var va float64
	for i = 0; i < r; i++ {
		row := X.data[i*c : (i+1)*c]
		for a = 0; a < c; a++ {
			va = row[a]
			for b = a; b < c; b++ {
				C.data[a*c+b] += va * row[b]
			}
		}
	}

	// Stage 3 (Finalize): scale and mirror.
	inv := 1.0 / math.Max(1, float64(r-1))
	for a = 0; a < c; a++ {
		for b = a; b < c; b++ {
			C.data[a*c+b] *= inv
			if a != b {
				C.data[b*c+a] = C.data[a*c+b]
			}
		}
	}

	return C, nil
}
