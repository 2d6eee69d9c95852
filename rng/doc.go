// Package rng provides the string-seeded, deterministic random streams that
// every stochastic step of the engine draws from.
//
// Goals:
//   - Determinism: the same seed string yields the same stream on every
//     platform and run (FNV-1a hash → mulberry32 generator).
//   - Encapsulation: no package-level generator. Each consumer constructs
//     its own *Stream from an explicit key, so independent call sites
//     (PCA seed vectors, k-means++ selection, per-point jitter) never
//     interfere, even when run in parallel.
//
// Concurrency:
//   - A *Stream is NOT goroutine-safe. Derive one stream per task instead of
//     sharing; creation is O(len(key)).
package rng
