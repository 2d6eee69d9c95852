// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrUnknownQuestion indicates a base that the manifest does not list.
	ErrUnknownQuestion = errors.New("dataset: unknown question")

	// ErrMissingColumn indicates a CSV header without a required column.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrMalformed indicates a file that parses but has the wrong shape.
	ErrMalformed = errors.New("dataset: malformed file")
)
