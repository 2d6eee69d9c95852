// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/symmetry checks.
//  - Return wrapped sentinel errors so call sites can match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Content).

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// IsSymmetric reports whether |m[i,j] - m[j,i]| <= eps for all i<j.
// Non-square or nil matrices are never symmetric.
// Complexity: O(n²) over the upper triangle.
func IsSymmetric(m *Dense, eps float64) bool {
	if ValidateSquare(m) != nil {
		return false
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return false
			}
		}
	}

	return true
}
