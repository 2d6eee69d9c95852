// SPDX-License-Identifier: MIT

package embed

import "errors"

var (
	// ErrUnknownMode is returned by ParseMode for an unrecognized mode name.
	ErrUnknownMode = errors.New("embed: unknown embedding mode")

	// ErrNoPrecomputed indicates that a precomputed mode was requested but a
	// record carries no coordinates.
	ErrNoPrecomputed = errors.New("embed: record has no precomputed coordinates")

	// ErrMethodMismatch indicates that a precomputed file was produced by a
	// different method than the requested mode (e.g. PCA data for PreUMAP).
	ErrMethodMismatch = errors.New("embed: precomputed method does not match mode")
)
