// Package feature turns raw survey records into the normalized, centered
// numeric matrix consumed by the projection engine.
//
// Overview:
//
//   - Record is one respondent: an ID, a group label (e.g. party) and a set
//     of raw answer cells keyed by column name.
//   - Table resolves an ordered column selection once, so later stages work
//     on typed column slices instead of per-row property lookups.
//   - FillPolicy is the fixed, per-question substitute for missing or
//     non-numeric answers. It is configuration, not an imputation model.
//   - Build produces the FeatureMatrix.
//
// Build algorithm (per column):
//
//  1. Coerce every cell to a number; placeholders ("-", "") and anything
//     non-finite become the fill value.
//  2. Compute the column min/max.
//  3. Range < 1e-9: the column becomes all zeros. Otherwise scale to [-1,1]
//     with (v-mid)/half and clamp residual rounding.
//  4. Subtract the column mean (divisor max(1,n)).
//
// Invariants of the result:
//
//   - Every column has zero mean (within rounding).
//   - Before centering every column lies in [-1,1]; centering is a shift,
//     so the spread max-min of each column never exceeds 2.
//   - Degenerate columns are exactly zero.
//
// Build never fails: an empty population or an empty column selection
// yields a zero-size matrix.
package feature
