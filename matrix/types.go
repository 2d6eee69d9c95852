// SPDX-License-Identifier: MIT

package matrix

// Matrix is the indexed float64 grid shared by the feature builder and the
// eigen-solvers. Dense is the only implementation.
type Matrix interface {
	Rows() int
	Cols() int

	// At and Set report ErrOutOfRange for an index outside the shape.
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error

	// Clone copies the storage; the copy shares nothing with the receiver.
	Clone() Matrix
}
