// SPDX-License-Identifier: MIT

package embed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

// Mode selects where coordinates come from.
type Mode string

const (
	// PCAJS computes coordinates with Project.
	PCAJS Mode = "pca_js"

	// PrePCA uses coordinates precomputed by an offline PCA.
	PrePCA Mode = "pre_pca"

	// PreUMAP uses coordinates precomputed by an offline UMAP.
	PreUMAP Mode = "pre_umap"
)

// Modes lists every supported mode.
var Modes = []Mode{PCAJS, PrePCA, PreUMAP}

// ParseMode validates s as a Mode. Matching is case-insensitive and the
// empty string selects PCAJS.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PCAJS, nil
	}
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Computed reports whether m derives coordinates from answers.
func (m Mode) Computed() bool { return m == PCAJS }

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }

// Method returns the Projection method label of a precomputed mode.
func (m Mode) Method() string {
	switch m {
	case PreUMAP:
		return MethodPreUMAP
	case PrePCA:
		return MethodPrePCA
	default:
		return ""
	}
}

// CheckMethod verifies that a precomputed file produced by method (as found in
// its metadata) can serve m. Only PreUMAP is strict: the method must mention UMAP.
func (m Mode) CheckMethod(method string) error {
	if m == PreUMAP && !strings.Contains(strings.ToUpper(method), "UMAP") {
		return fmt.Errorf("mode %s, file method %q: %w", m, method, ErrMethodMismatch)
	}

	return nil
}

// FromPrecomputed returns the coordinates stored in t as a Projection.
// No rescale and no jitter are applied.
// Errors: ErrNoPrecomputed (wrapped with the row id) if any row lacks coordinates.
func FromPrecomputed(t *feature.Table, m Mode) (Projection, error) {
	pts := make([]geom.Point3D, t.Len())
	for i := range pts {
		c, ok := t.Coords(i)
		if !ok {
			return Projection{}, fmt.Errorf("FromPrecomputed: id %q: %w", t.ID(i), ErrNoPrecomputed)
		}
		pts[i] = geom.Point3D{ID: t.ID(i), X: c[0], Y: c[1], Z: c[2]}
	}

	return Projection{Points: pts, Method: m.Method()}, nil
}
