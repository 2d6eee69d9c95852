// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Small vector kernels shared by the power-iteration solver and the
//     projection engine: Dot, Norm, Normalize, MatVec, Outer, SubScaledOuter.
//
// Determinism:
//   - Fixed index order; no zero-skipping micro-optimizations, so the
//     floating-point summation order never depends on the data.

package matrix

import "math"

const (
	opMatVec         = "MatVec"
	opSubScaledOuter = "SubScaledOuter"

	// normFloor is the squared-norm floor used by Norm/Normalize so that a
	// zero vector normalizes to zero instead of NaN.
	normFloor = 1e-12
)

// Dot returns Σ a[i]*b[i] over the common prefix of a and b.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}

	return s
}

// Norm returns the Euclidean norm of v, floored at sqrt(1e-12).
func Norm(v []float64) float64 {
	return math.Sqrt(math.Max(normFloor, Dot(v, v)))
}

// Normalize returns a new vector v/Norm(v).
func Normalize(v []float64) []float64 {
	n := Norm(v)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}

	return out
}

// MatVec computes y = A·x for a Dense A.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols().
// Complexity: O(r*c).
func MatVec(A *Dense, x []float64) ([]float64, error) {
	if A == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != A.c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]float64, A.r)
	var i, j int
	var acc float64
	for i = 0; i < A.r; i++ {
		acc = 0
		base := i * A.c
		for j = 0; j < A.c; j++ {
			acc += A.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Outer returns the n×n matrix v·vᵀ.
func Outer(v []float64) *Dense {
	n := len(v)
	M := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			M.data[i*n+j] = v[i] * v[j]
		}
	}

	return M
}

// SubScaledOuter performs A -= scale·(v·vᵀ) in place.
// A must be square with side len(v).
// Complexity: O(n²).
func SubScaledOuter(A *Dense, v []float64, scale float64) error {
	if A == nil {
		return matrixErrorf(opSubScaledOuter, ErrNilMatrix)
	}
	if A.r != A.c {
		return matrixErrorf(opSubScaledOuter, ErrNonSquare)
	}
	if len(v) != A.r {
		return matrixErrorf(opSubScaledOuter, ErrDimensionMismatch)
	}
	n := A.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.data[i*n+j] -= scale * (v[i] * v[j])
		}
	}

	return nil
}
