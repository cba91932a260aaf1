// Package lvtrace turns graph algorithms into step-by-step traces that can
// be played back, compared side by side and served over HTTP.
//
// Every algorithm is a trace generator: it takes a *core.GraphData plus
// trace.Params and returns a trace.Trace, an ordered list of immutable
// snapshots (frontier, distances, matrix, flow, highlighted edges and a
// one-line description). Nothing is animated inside the generators; the
// playback layer only moves an index over a finished trace.
//
// Layout:
//
//	core/         GraphData, its builder, loaders and validation
//	trace/        the Step and Trace contract shared by every generator
//	bfs/          BFS, multi-source, 0-1 BFS, Dial, flood fill, word ladder
//	dfs/          DFS, cycle detection, topological sort
//	dijkstra/     Dijkstra, Bellman-Ford, D'Esopo-Pape, Johnson
//	prim_kruskal/ Prim, Kruskal, Borůvka
//	dsu/          union-find forest and its trace
//	lowlink/      SCC, bridges, articulation points, biconnected components
//	flow/         Edmonds-Karp, Dinic, push-relabel, min cut, matching
//	matrix/       Floyd-Warshall, closure, walk counts, multistage, min mean cycle
//	euler/        Fleury
//	karger/       randomized min cut
//	gridgraph/    mazes and boards as graphs
//	builder/      generated shapes: cycle, wheel, grid, random
//	samples/      embedded sample graphs
//	topics/       registry binding each generator to a sample and defaults
//	playback/     play/pause/seek controller over a step index
//	compare/      two traces on one shared clock
//	render/       terminal rendering with lipgloss
//	explain/      LLM explanations and markdown rendering
//	feedback/     votes and cached explanations (memory, redis, sqlite)
//	config/       environment configuration
//	server/       gin HTTP API with Prometheus metrics
//	cmd/lvtrace/  the cobra CLI
//
// Quick start:
//
//	go run ./cmd/lvtrace topics
//	go run ./cmd/lvtrace play dijkstra --speed 300
//	go run ./cmd/lvtrace compare prim-vs-kruskal --brief
//	go run ./cmd/lvtrace run bfs --shape grid:3x4 --end L
package lvtrace
