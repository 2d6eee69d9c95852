// Package embed projects a feature matrix into 3D.
//
// The projection is an approximate PCA: the covariance of the centered
// feature matrix is decomposed by power iteration with deflation (see
// matrix/ops), seeded from a string key so that every run reproduces the
// same basis. Low-dimensional questions use fixed fallbacks so that
// different questions never collapse onto the same picture:
//
//   - d >= 3: project onto the top three components ("PCA(JS)").
//   - d == 2: project onto both components and lift to the tilted plane
//     z = 0.35a + 0.20b ("PCA2(JS)").
//   - d == 1: wrap the single value around a helix whose phase is derived
//     from the question base ("Curve1D(JS)").
//   - d == 0: every point sits at the origin ("Empty"); no rescale, no jitter.
//
// After projection each axis is rescaled to a common RMS (30 by default) and
// a deterministic per-respondent Gaussian jitter is added. The jitter size
// depends on how many distinct answer patterns the question has, so that
// questions with a handful of possible answers do not render as a few
// overlapping dots.
//
// Seed keys:
//
//	"{base}|pca"          basis seed vectors, d >= 3
//	"{base}|pca2"         basis seed vectors, d == 2
//	"{base}|jitter|{id}"  per-point jitter stream
//
// Precomputed embeddings (Mode PrePCA and PreUMAP) bypass all of the above
// and take coordinates straight from the records; see FromPrecomputed.
package embed
