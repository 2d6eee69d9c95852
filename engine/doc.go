// Package engine turns survey answers into a clustered 3-D scene.
//
// One Engine owns a data Source, an optional result cache, a logger and
// the numeric settings. For a question base and an embedding mode it:
//
//   - loads the manifest entry and the embed file (dataset),
//   - builds coordinates (embed.Project, or the file's precomputed ones),
//   - clusters the whole population and each group with the elbow rule,
//     caching results under "base|mode" and "base|mode::group",
//   - fits one outline ellipsoid per global cluster.
//
// Precompute runs many questions on a bounded worker pool. The numeric
// packages are pure, so scenes computed in parallel equal sequential ones.
package engine
