// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/katalvlaran/surveyspace/dataset"
	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/feature"
)

// Embedding is one question laid out in 3-D.
type Embedding struct {
	Question   dataset.Question
	Mode       embed.Mode // effective mode, after any fallback
	Table      *feature.Table
	Projection embed.Projection
	Meta       dataset.Meta
	Names      map[string]string
	Fallback   bool // PCAJS was requested but precomputed coordinates were used
}

// Base returns the question base.
func (em *Embedding) Base() string { return em.Question.Base }

// Embed loads base and computes its coordinates for mode.
//   - PCAJS: embed.Project over every column the manifest lists; a column no
//     record answers is a constant fill column. A manifest entry that lists
//     no columns at all falls back to the file's coordinates (PrePCA) when
//     every record carries them.
//   - PrePCA: the file's coordinates.
//   - PreUMAP: the file's coordinates; the file meta method must mention UMAP.
//
// Errors: dataset errors, embed.ErrMethodMismatch, embed.ErrNoPrecomputed.
func (e *Engine) Embed(base string, mode embed.Mode) (*Embedding, error) {
	start := time.Now()
	q, ef, err := e.src.Load(base, mode)
	if err != nil {
		return nil, err
	}
	e.metrics.ObserveCompute(StageLoad, time.Since(start))

	start = time.Now()
	em := &Embedding{
		Question: q,
		Mode:     mode,
		Table:    feature.NewTable(ef.Records, q.Columns),
		Meta:     ef.Meta,
		Names:    ef.Names,
	}

	switch mode {
	case embed.PCAJS:
		if len(q.Columns) == 0 && em.Table.Len() > 0 && hasAllCoords(em.Table) {
			e.log.Warn().Str("base", base).Msg("Question lists no answer columns, falling back to precomputed coordinates")
			em.Mode, em.Fallback = embed.PrePCA, true
			if em.Projection, err = embed.FromPrecomputed(em.Table, embed.PrePCA); err != nil {
				return nil, err
			}
			break
		}
		em.Projection = embed.Project(em.Table, base, e.embedOpt...)
	case embed.PreUMAP:
		if err = mode.CheckMethod(ef.Meta.Method); err != nil {
			return nil, err
		}
		fallthrough
	default:
		if em.Projection, err = embed.FromPrecomputed(em.Table, mode); err != nil {
			return nil, err
		}
	}
	e.metrics.ObserveCompute(StageEmbed, time.Since(start))

	e.log.Debug().Str("base", base).Str("mode", em.Mode.String()).Str("method", em.Projection.Method).
		Int("rows", em.Table.Len()).Int("columns", em.Table.Width()).Msg("Embedded question")

	return em, nil
}

func hasAllCoords(t *feature.Table) bool {
	for i := 0; i < t.Len(); i++ {
		if _, ok := t.Coords(i); !ok {
			return false
		}
	}

	return true
}
