// SPDX-License-Identifier: MIT

// Package ops provides the iterative eigen-solvers used by the embedding
// engine on top of the matrix package:
//
//   - Jacobi: cyclic Jacobi rotations for small symmetric matrices
//     (the ellipsoid fitter runs it on 3×3 cluster covariances).
//   - PowerIteration + Deflate: dominant eigenpair extraction for the
//     approximate PCA basis.
//
// Both solvers run a FIXED number of iterations. Non-convergence is accepted
// as an approximation and reported, never turned into an error.
package ops

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/surveyspace/matrix"
)

const (
	// DefaultJacobiTol is the off-diagonal magnitude below which Jacobi stops.
	DefaultJacobiTol = 1e-10

	// DefaultJacobiSweeps caps the number of rotations.
	DefaultJacobiSweeps = 18
)

// Eigen is the result of a symmetric eigen-decomposition.
// Values are sorted in descending order; Vectors[k] is the unit eigenvector
// paired with Values[k].
type Eigen struct {
	Values    []float64
	Vectors   [][]float64
	Sweeps    int  // rotations actually applied
	Converged bool // largest off-diagonal fell below tol
}

// Jacobi diagonalizes a symmetric matrix with cyclic Jacobi rotations.
// Implementation:
//   - Stage 1: Validate square shape; copy A into a working buffer and start V = I.
//   - Stage 2: For up to maxSweeps rotations pick the pivot (p,q) with the
//     largest |a_pq| (first in row-major order on ties); stop when it is < tol.
//   - Stage 3: τ = (a_qq − a_pp)/(2a_pq), t = sign(τ)/(|τ| + √(1+τ²)) with t=1
//     for τ=0, c = 1/√(1+t²), s = t·c; rotate rows/cols p,q of the working
//     matrix and columns p,q of V.
//   - Stage 4: Sort eigenpairs by descending eigenvalue (stable on ties).
//
// Behavior highlights:
//   - A is never mutated.
//   - Symmetry is assumed, not checked: only the upper triangle drives pivots.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare (wrapped) for shape violations only.
//
// Complexity: O(maxSweeps·n) per call plus O(n²) pivot scans.
func Jacobi(A *matrix.Dense, tol float64, maxSweeps int) (Eigen, error) {
	// Stage 1: Validate input.
	if err := matrix.ValidateSquare(A); err != nil {
		return Eigen{}, fmt.Errorf("Jacobi: %w", err)
	}
	n := A.Rows()
	a := make([][]float64, n) // working copy
	v := make([][]float64, n) // accumulated rotations, columns are eigenvectors
	for i := 0; i < n; i++ {
		a[i] = append([]float64(nil), A.RawRow(i)...)
		v[i] = make([]float64, n)
		v[i][i] = 1
	}

	// Stage 2/3: rotations.
	var (
		sweep     int
		p, q      int
		maxOff    float64
		converged = n < 2
	)
	for sweep = 0; sweep < maxSweeps && !converged; sweep++ {
		p, q, maxOff = pivot(a)
		if maxOff < tol {
			converged = true
			break
		}
		rotate(a, v, p, q)
	}
	if !converged {
		if _, _, maxOff = pivot(a); maxOff < tol {
			converged = true
		}
	}

	// Stage 4: sort descending.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool { return a[idx[x]][idx[x]] > a[idx[y]][idx[y]] })

	out := Eigen{
		Values:    make([]float64, n),
		Vectors:   make([][]float64, n),
		Sweeps:    sweep,
		Converged: converged,
	}
	for k, col := range idx {
		out.Values[k] = a[col][col]
		vec := make([]float64, n)
		for i := 0; i < n; i++ {
			vec[i] = v[i][col]
		}
		out.Vectors[k] = vec
	}

	return out, nil
}

// pivot returns the upper-triangle position with the largest magnitude.
// A strict '>' keeps the first maximum in (0,1),(0,2),...,(1,2) order.
func pivot(a [][]float64) (p, q int, maxOff float64) {
	n := len(a)
	p, q = 0, 1
	maxOff = -1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m := math.Abs(a[i][j]); m > maxOff {
				maxOff = m
				p, q = i, j
			}
		}
	}
	if maxOff < 0 {
		maxOff = 0
	}

	return p, q, maxOff
}

// rotate zeroes a[p][q] with a single Jacobi rotation and accumulates it into v.
func rotate(a, v [][]float64, p, q int) {
	n := len(a)
	app, aqq, apq := a[p][p], a[q][q], a[p][q]

	tau := (aqq - app) / (2 * apq)
	t := 1.0
	if tau != 0 {
		t = math.Copysign(1, tau) / (math.Abs(tau) + math.Sqrt(1+tau*tau))
	}
	c := 1 / math.Sqrt(1+t*t)
	s := t * c

	for r := 0; r < n; r++ {
		if r == p || r == q {
			continue
		}
		arp, arq := a[r][p], a[r][q]
		a[r][p] = c*arp - s*arq
		a[p][r] = a[r][p]
		a[r][q] = s*arp + c*arq
		a[q][r] = a[r][q]
	}
	a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
	a[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
	a[p][q] = 0
	a[q][p] = 0

	for r := 0; r < n; r++ {
		vrp, vrq := v[r][p], v[r][q]
		v[r][p] = c*vrp - s*vrq
		v[r][q] = s*vrp + c*vrq
	}
}
