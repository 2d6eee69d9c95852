// Package cluster groups 3D points with seeded k-means and picks the
// cluster count with a one-sided elbow rule.
//
// What:
//
//   - KMeans3D: k-means++ seeding from a string-keyed stream followed by at
//     most 25 Lloyd iterations. Ties go to the lowest center index; an empty
//     cluster keeps its previous center.
//   - WCSS: within-cluster sum of squares of an id-keyed assignment.
//   - ChooseKByElbow: runs KMeans3D for k = kMin, kMin+1, ... and stops the
//     first time the fractional WCSS improvement drops below a threshold,
//     keeping the previous k. Larger k values are never reconsidered.
//   - Profile: the population-size dependent [kMin, kMax] bounds used for
//     whole-population ("global") and per-group clustering.
//
// Determinism:
//
//	Every call creates its own stream from the seed key, so results depend
//	only on (points, k, seed key). Equal inputs give bit-identical results.
//
// Degenerate inputs are policy, not errors:
//
//	n == 0      -> K = 0, empty assignment
//	n < 3       -> ChooseKByElbow forces K = 1
//	k outside   -> clamped to [1, n]
//	coincident  -> k-means++ duplicates the first center
package cluster
