// Package matrix provides the dense numeric storage and statistics kernels
// used by the embedding engine.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     zero-size shapes (0×d, n×0) as legal, inert values.
//   - Column statistics: ColumnRange, CenterColumns and Covariance (sample
//     divisor max(1, n-1), so a single observation is not an error).
//   - Vector kernels (Dot, Norm, Normalize, MatVec, Outer) and the in-place
//     SubScaledOuter used for eigen-deflation.
//
// All loops run in a fixed i→j order so that results are bit-for-bit
// reproducible across runs and platforms.
package matrix
