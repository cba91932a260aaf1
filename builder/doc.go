// SPDX-License-Identifier: MIT
// Package: lvtrace/builder
//
// Package builder generates classic graph shapes as *core.GraphData so any
// topic can be replayed on a cycle, a wheel, a grid or a random graph
// instead of its hand-drawn sample.
//
// A shape is a Constructor; BuildGraph applies one or more of them to a
// fresh core.Builder:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Wheel(6),
//	)
//
// Parse reads the compact form used by the CLI --shape flag and the HTTP
// ?shape= query ("cycle:6", "grid:3x4", "random:8:0.3").
//
// Determinism: vertex IDs come from the configured IDFn, edges are emitted
// in a fixed order and weights are drawn from a seeded RNG only.
package builder
