// Package meshopt provides mesh-optimization primitives for triangular
// geometry destined for GPU rendering pipelines.
//
// # Overview
//
// Given indexed or unindexed triangle meshes, meshopt reorders indices and
// vertices to improve GPU cache behavior — post-transform vertex cache,
// pre-transform vertex fetch — and to reduce overdraw, and it exposes
// analyzers that quantify these metrics in a hardware-agnostic way. It also
// supplies small arithmetic helpers for quantizing floating-point values
// into fixed-point or half-precision representations suitable for vertex
// attributes.
//
// # Quick Start
//
//	import "github.com/gogpu/meshopt"
//
//	indices := make([]uint32, unindexedVertexCount)
//	unique := meshopt.GenerateIndexBuffer(indices, rawVertices, vertexSize)
//	vertices := make([]byte, unique*vertexSize)
//	meshopt.GenerateVertexBuffer(vertices, indices, rawVertices, vertexSize)
//
//	optimized := make([]uint32, len(indices))
//	clusters := meshopt.OptimizePostTransform(optimized, indices, unique, 16, true)
//
//	overdrawOptimized := make([]uint32, len(indices))
//	meshopt.OptimizeOverdraw(overdrawOptimized, optimized, clusters, vertices, vertexSize, unique, 16, 1.05)
//
//	fetchOptimized := make([]byte, unique*vertexSize)
//	fetchIndices := make([]uint32, len(indices))
//	meshopt.OptimizePreTransform(fetchOptimized, fetchIndices, overdrawOptimized, vertices, unique, vertexSize)
//
// # Architecture
//
// The public surface (this package) exposes the operations enumerated by
// the original meshoptimizer header: indexing, the three reorder passes,
// their analyzers, and the quantization helpers. The internal packages —
// meshmath (vector arithmetic and position decoding), meshhash (byte-record
// hashing for deduplication), adjacency (vertex/triangle adjacency
// tables), tipsify (the greedy fan-out walk), cluster (overdraw cluster
// scoring), raster (the overdraw software rasterizer), and vcache (FIFO and
// direct-mapped cache simulators) — hold the algorithms proper.
//
// # Concurrency
//
// Every exported function is synchronous, pure over its arguments, and
// free of package-level mutable state (besides the logger, which carries
// no mesh data). Callers may invoke any combination of these functions
// concurrently from different goroutines provided their input/output
// buffers do not alias.
//
// # Index width
//
// The library is generic over the index element type via the Index
// constraint (~uint16 | ~uint32), matching the original header's 16-bit and
// 32-bit overloads without duplicating the algorithm per width.
package meshopt
