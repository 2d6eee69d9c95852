// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/surveyspace/embed"
)

// Precompute builds the scene of every base in parallel, at most WithWorkers
// at a time. Scenes come back in input order; an empty bases list means
// every manifest question. A failed question leaves a nil entry and its
// error joined into the returned error; the others still complete.
// Questions not yet started when ctx is cancelled fail with ctx.Err().
func (e *Engine) Precompute(ctx context.Context, bases []string, mode embed.Mode) ([]*Scene, error) {
	if len(bases) == 0 {
		bases = e.src.Manifest().Bases()
	}

	scenes := make([]*Scene, len(bases))
	errs := make([]error, len(bases))
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, base := range bases {
		wg.Add(1)
		go func(i int, base string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = fmt.Errorf("%s: %w", base, ctx.Err())
				return
			}
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", base, err)
				return
			}

			sc, err := e.Scene(ctx, Request{Base: base, Mode: mode})
			if err != nil {
				e.log.Warn().Err(err).Str("base", base).Str("mode", mode.String()).Msg("Precompute failed")
				errs[i] = fmt.Errorf("%s: %w", base, err)
				return
			}
			scenes[i] = sc
		}(i, base)
	}
	wg.Wait()

	e.log.Info().Int("questions", len(bases)).Str("mode", mode.String()).Msg("Precompute finished")

	return scenes, errors.Join(errs...)
}
