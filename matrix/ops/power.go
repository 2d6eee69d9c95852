// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/surveyspace/matrix"
)

// DefaultPowerIterations is the fixed step count of PowerIteration.
const DefaultPowerIterations = 28

// PowerIteration approximates the dominant eigenpair of a symmetric matrix C.
// Implementation:
//   - Stage 1: v = seed/‖seed‖ (norm floored, so a zero seed stays zero).
//   - Stage 2: iters times: v = C·v / ‖C·v‖.
//   - Stage 3: eigenvalue estimate via the Rayleigh quotient vᵀ·C·v.
//
// Behavior highlights:
//   - Fixed step count; no convergence test, no failure path.
//   - The seed is never mutated.
//
// Errors:
//   - ErrNonSquare / ErrDimensionMismatch (wrapped) when len(seed) != side of C.
//
// Complexity: O(iters·d²).
func PowerIteration(C *matrix.Dense, seed []float64, iters int) ([]float64, float64, error) {
	if err := matrix.ValidateSquare(C); err != nil {
		return nil, 0, fmt.Errorf("PowerIteration: %w", err)
	}
	if len(seed) != C.Rows() {
		return nil, 0, fmt.Errorf("PowerIteration: %w", matrix.ErrDimensionMismatch)
	}

	v := matrix.Normalize(seed)
	var err error
	for k := 0; k < iters; k++ {
		if v, err = matrix.MatVec(C, v); err != nil {
			return nil, 0, fmt.Errorf("PowerIteration: %w", err)
		}
		v = matrix.Normalize(v)
	}
	Cv, err := matrix.MatVec(C, v)
	if err != nil {
		return nil, 0, fmt.Errorf("PowerIteration: %w", err)
	}

	return v, matrix.Dot(v, Cv), nil
}

// Deflate removes the found eigenpair from C in place: C -= value·v·vᵀ.
// The next PowerIteration on C then converges to a direction orthogonal to v.
func Deflate(C *matrix.Dense, v []float64, value float64) error {
	if err := matrix.SubScaledOuter(C, v, value); err != nil {
		return fmt.Errorf("Deflate: %w", err)
	}

	return nil
}
