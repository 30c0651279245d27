// Package router builds an adjacency view of a contracted Graph, runs
// single-source Dijkstra over it, and assembles the absorbing-chain
// cost matrix consumed by the host system's routing step.
//
// The shortest-path search is grounded on katalvlaran/lvlath/dijkstra's
// lazy-deletion min-heap: push a new heap entry on every relaxation
// instead of decreasing an existing key, and skip stale entries when
// popped. It is reimplemented here over contiguous integer vertex
// indices rather than string ids, since the cost matrix needs a dense
// 0..N-1 indexing anyway and doing the id<->index translation once in
// BuildAdjacency avoids repeating map lookups inside the hot loop.
//
// BuildAdjacency groups each vertex's outgoing edges explicitly by
// FromID and sorts each group by ToID before Dijkstra ever runs,
// rather than trusting that edges already arrive grouped by source —
// an assumption that silently drops edges the moment it doesn't hold.
//
// CostMatrix is grounded on katalvlaran/lvlath/matrix.Dense: a flat,
// row-major, bounds-checked store rather than a slice of slices.
package router
