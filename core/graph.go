package core

import (
	"sort"
	"sync"
)

// Graph is the in-memory owner of the vertex catalog and the edge
// vector for a single transformation session. No entity outlives the
// Graph that created it.
//
// muVert guards vertices; muEdge guards edges and nextEdgeID. The two
// locks are never held at once, mirroring katalvlaran/lvlath's
// core.Graph lock-ordering discipline.
type Graph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	vertices map[string]*Vertex

	// edges is the edge vector: entries are appended in the order
	// edges are created (original rows, then later the Contractor's
	// synthesized replacements) and are never reordered; only
	// DeleteEdgesWhere (the Pruner) removes entries. The Contractor
	// sweeps this slice in that same order.
	edges      []*Edge
	edgeByID   map[int]*Edge
	nextEdgeID int
}

// NewGraph returns an empty Graph ready to accept Builder rows.
func NewGraph() *Graph {
	return &Graph{
		vertices:   make(map[string]*Vertex),
		edgeByID:   make(map[int]*Edge),
		nextEdgeID: 0,
	}
}

// ensureVertex returns the existing vertex for id, or creates one with
// the supplied coordinates if this is the first time id is seen.
// Coordinates supplied on a later sighting of an already-known vertex
// are ignored: the first sighting wins.
func (g *Graph) ensureVertex(id string, lat, lon float64) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := newVertex(id, lat, lon)
	g.vertices[id] = v

	return v
}

// nextID returns the next edge id for this Graph, starting at 1 and
// monotonically increasing within the session. It is a field on the
// Graph instance, not a package-level counter, so two concurrent
// transformations never share an id sequence.
func (g *Graph) nextID() int {
	g.nextEdgeID++

	return g.nextEdgeID
}

// AddEdgeRow is the Graph Builder operation. It ensures vertices exist
// for FromID/ToID (creating them with the row's coordinates on first
// sight), wires the neighbour sets, and appends a fresh original edge
// to the edge vector.
//
// Duplicate (FromID,ToID) pairs are permitted and retained as separate
// edge records; the neighbour sets, being sets, coalesce the duplicate
// ids naturally.
//
// Returns ErrMissingID if FromID or ToID is empty; this is the only
// failure mode.
func (g *Graph) AddEdgeRow(row EdgeRow) (*Edge, error) {
	if row.FromID == "" || row.ToID == "" {
		return nil, ErrMissingID
	}

	g.muVert.Lock()
	from := g.ensureVertex(row.FromID, row.FromLat, row.FromLon)
	to := g.ensureVertex(row.ToID, row.ToLat, row.ToLon)
	from.Outgoing[row.ToID] = struct{}{}
	to.Incoming[row.FromID] = struct{}{}
	g.muVert.Unlock()

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e := &Edge{
		ID:             g.nextID(),
		From:           row.FromID,
		To:             row.ToID,
		Distance:       row.Dist,
		Weight:         row.Weight,
		Highway:        row.Highway,
		ReplacingEdges: make(map[int]struct{}),
		InOriginal:     true,
		InCompact:      true,
	}
	g.edges = append(g.edges, e)
	g.edgeByID[e.ID] = e

	return e, nil
}

// AddSyntheticEdge inserts a Contractor-synthesized edge into the edge
// vector, assigning it a fresh id. InOriginal is always false for
// these edges.
func (g *Graph) AddSyntheticEdge(from, to string, distance, weight float64, highway string, replacing map[int]struct{}) *Edge {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	e := &Edge{
		ID:             g.nextID(),
		From:           from,
		To:             to,
		Distance:       distance,
		Weight:         weight,
		Highway:        highway,
		ReplacingEdges: replacing,
		InOriginal:     false,
		InCompact:      true,
	}
	g.edges = append(g.edges, e)
	g.edgeByID[e.ID] = e

	return e
}

// Vertex returns the vertex for id, or nil if absent.
func (g *Graph) Vertex(id string) *Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertices[id]
}

// HasVertex reports whether id is a known vertex.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexIDs returns every vertex id in lexicographic order. Iterating
// in this fixed order is what gives the Contractor its deterministic
// fixed point.
func (g *Graph) VertexIDs() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices currently in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// DeleteVertex removes id from the vertex catalog. The Pruner is the
// only stage that calls this; the Contractor intentionally leaves
// collapsed vertices in place and flips their InCompact flag instead.
func (g *Graph) DeleteVertex(id string) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	delete(g.vertices, id)
}

// Edges returns the edge vector itself (not a copy): the live,
// insertion-ordered slice of every edge created in this session and not
// removed by DeleteEdgesWhere, in original-then-synthesized order. Callers that need to mutate
// InCompact in place (the Contractor) rely on this being the same
// backing slice, not a snapshot.
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.edges
}

// EdgeByID returns the edge with the given id, or (nil, false).
func (g *Graph) EdgeByID(id int) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edgeByID[id]

	return e, ok
}

// EdgeCount returns the number of edges in the edge vector (including
// edges now marked InCompact=false).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// DeleteEdgesWhere removes, in place, every edge for which pred
// returns true. Used by the Pruner to drop edges whose endpoints no
// longer reference a live vertex.
func (g *Graph) DeleteEdgesWhere(pred func(*Edge) bool) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	kept := g.edges[:0]
	for _, e := range g.edges {
		if pred(e) {
			delete(g.edgeByID, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
}
