// SPDX-License-Identifier: MIT

// Package ellipsoid fits oriented outline ellipsoids to clusters of 3D points.
//
// For each cluster the fitter computes the centroid and the 3×3 sample
// covariance (divisor max(1, count-1)), diagonalizes it with cyclic Jacobi
// rotations (matrix/ops.Jacobi), and turns the spectrum into geometry:
//
//	σ_k      = sqrt(max(λ_k, 1e-9))
//	extent_k = max(MinExtent, Coverage·σ_k + Margin)   defaults 6, 2.2, 2
//
// The eigenvectors become the axes, ordered by descending variance. The
// third axis is flipped when needed so the basis is right-handed, and the
// orientation quaternion maps the canonical x/y/z axes onto it.
//
// The fit is descriptive only: it never feeds back into clustering.
package ellipsoid
