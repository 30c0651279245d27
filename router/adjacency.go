package router

import (
	"sort"

	"github.com/osmroute/compactgraph/core"
)

// arc is one outgoing connection in the adjacency list: the index of
// the neighbour and the edge weight to reach it.
type arc struct {
	to     int
	weight float64
}

// Graph is the Router's adjacency view over a compact Graph: every
// vertex id is re-keyed to a contiguous index 0..N-1, and out holds
// each vertex's outgoing arcs explicitly grouped and sorted by
// neighbour index.
type Graph struct {
	ids []string // index -> original vertex id
	out [][]arc  // out[i] is vertex i's outgoing arcs, sorted by arc.to
}

// BuildAdjacency re-keys g's live (InCompact) vertices and edges into a
// Graph. A vertex the Contractor collapsed is left in the graph's
// vertex map with InCompact=false rather than deleted, so indexing
// g.VertexIDs() directly would hand those collapsed vertices a live
// index too; BuildAdjacency filters to v.InCompact before assigning
// indices. Index assignment follows g.VertexIDs()'s lexicographic
// order restricted to that subset, giving a deterministic mapping
// independent of edge insertion order.
//
// Arcs are grouped explicitly by From vertex and sorted by To index,
// rather than relying on the edge vector's insertion order: code that
// just walked the edge vector and assumed it was already grouped by
// source would silently drop edges whenever that assumption didn't hold.
func BuildAdjacency(g *core.Graph) (*Graph, error) {
	var ids []string
	for _, id := range g.VertexIDs() {
		if v := g.Vertex(id); v != nil && v.InCompact {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	out := make([][]arc, len(ids))
	for _, e := range g.Edges() {
		if !e.InCompact {
			continue
		}
		from, ok := index[e.From]
		if !ok {
			continue
		}
		to, ok := index[e.To]
		if !ok {
			continue
		}
		out[from] = append(out[from], arc{to: to, weight: e.Weight})
	}

	for i := range out {
		sort.Slice(out[i], func(a, b int) bool { return out[i][a].to < out[i][b].to })
	}

	return &Graph{ids: ids, out: out}, nil
}

// N returns the number of vertices.
func (gr *Graph) N() int { return len(gr.ids) }

// VertexID returns the original vertex id for index i.
func (gr *Graph) VertexID(i int) string { return gr.ids[i] }

// Index returns the contiguous index assigned to vertex id, or -1 if
// id is not part of this adjacency.
func (gr *Graph) Index(id string) int {
	for i, v := range gr.ids {
		if v == id {
			return i
		}
	}

	return -1
}
