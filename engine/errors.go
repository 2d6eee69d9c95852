// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrUnknownGroup indicates a group with no respondents in the question.
	ErrUnknownGroup = errors.New("engine: unknown group")

	// ErrUnknownColumn indicates an option filter on a column the question lacks.
	ErrUnknownColumn = errors.New("engine: unknown column")
)
