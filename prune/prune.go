package prune

import "github.com/osmroute/compactgraph/core"

// Prune removes, in place, every vertex whose label differs from
// largest, then removes every edge whose From or To no longer
// references a surviving vertex — checking both endpoints rather than
// just From.
func Prune(g *core.Graph, labels map[string]int, largest int) {
	for _, id := range g.VertexIDs() {
		if labels[id] != largest {
			g.DeleteVertex(id)
		}
	}

	// Snapshot the survivors first: the predicate runs while
	// DeleteEdgesWhere holds the edge lock, so it must not take the
	// vertex lock.
	alive := make(map[string]struct{})
	for _, id := range g.VertexIDs() {
		alive[id] = struct{}{}
	}
	g.DeleteEdgesWhere(func(e *core.Edge) bool {
		_, fromOK := alive[e.From]
		_, toOK := alive[e.To]
		return !fromOK || !toOK
	})
}
