// Package surveyspace places survey respondents in a 3-D space from their
// answers and groups them into clusters, deterministically: the same
// answers, question id and settings always give the same picture.
//
// 🚀 What is surveyspace?
//
//	A small engine behind an interactive survey viewer:
//		• Feature matrix: answers coerced, scaled to [-1,1] and centered
//		• Projection: approximate PCA by power iteration + deflation,
//		  with plane/helix layouts for 2- and 1-column questions
//		• Jitter: reproducible per-respondent offsets sized by answer diversity
//		• Clustering: k-means++ / Lloyd, k picked by an elbow rule
//		• Outlines: one ellipsoid per cluster from a 3×3 Jacobi solve
//
// ✨ Why surveyspace?
//
//   - Reproducible: every random draw comes from a keyed mulberry32 stream
//   - Explicit: caches and loggers are caller-owned objects, never globals
//   - Concurrent: questions precompute in parallel with identical results
//
// Layout:
//
//	rng/         FNV-1a keyed streams: uniform, normal, Intn
//	matrix/      dense matrix, column statistics, covariance, vector kernels
//	matrix/ops/  power iteration, deflation, Jacobi eigen-solver
//	geom/        Vec3, Point3D, bases and quaternions
//	feature/     answer cells, tables, fill policy, option filters, Build
//	embed/       projection, rescale, jitter, embedding modes
//	cluster/     KMeans3D, WCSS, ChooseKByElbow, profiles
//	ellipsoid/   per-cluster outline fitting
//	dataset/     manifest, embed files, CSV
//	cache/       memory and Redis result caches with Prometheus metrics
//	config/      YAML settings
//	engine/      scenes, per-group clustering, parallel precompute
//	cmd/surveyspace  the CLI
//
// Quick example:
//
//	e := engine.New(src)
//	sc, err := e.Scene(ctx, engine.Request{Base: "Q7", Mode: embed.PCAJS})
//
//	go install github.com/katalvlaran/surveyspace/cmd/surveyspace@latest
package surveyspace
