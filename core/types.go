package core

// Vertex is a node in the road network, identified by an opaque OSM id.
//
// Incoming and Outgoing are sets of neighbour vertex ids, kept as
// map[string]struct{} the way katalvlaran/lvlath keeps adjacency sets.
// InCompact tracks whether this vertex is still reachable from a live
// compact edge after contraction; contraction never deletes a Vertex
// record (see contract package), it only flips this flag.
type Vertex struct {
	ID  string
	Lat float64
	Lon float64

	Incoming map[string]struct{}
	Outgoing map[string]struct{}

	InCompact bool
}

// newVertex allocates a Vertex with empty neighbour sets.
func newVertex(id string, lat, lon float64) *Vertex {
	return &Vertex{
		ID:        id,
		Lat:       lat,
		Lon:       lon,
		Incoming:  make(map[string]struct{}),
		Outgoing:  make(map[string]struct{}),
		InCompact: true,
	}
}

// AllNeighbours returns the set union of Incoming and Outgoing.
func (v *Vertex) AllNeighbours() map[string]struct{} {
	all := make(map[string]struct{}, len(v.Incoming)+len(v.Outgoing))
	for id := range v.Incoming {
		all[id] = struct{}{}
	}
	for id := range v.Outgoing {
		all[id] = struct{}{}
	}

	return all
}

// IsIntermediateSingle reports whether v has the "intermediate single"
// shape: exactly one in-neighbour, exactly one out-neighbour, and the
// two are distinct vertices.
func (v *Vertex) IsIntermediateSingle() bool {
	return len(v.Incoming) == 1 && len(v.Outgoing) == 1 && len(v.AllNeighbours()) == 2
}

// IsIntermediateDouble reports whether v has the "intermediate double"
// shape: two in-neighbours and two out-neighbours, but the combined
// neighbour set has size 2 (i.e. v sits between a,b with edges in both
// directions on both sides).
func (v *Vertex) IsIntermediateDouble() bool {
	return len(v.Incoming) == 2 && len(v.Outgoing) == 2 && len(v.AllNeighbours()) == 2
}

// ReplaceNeighbour rewrites every occurrence of oldID in Incoming/Outgoing
// with newID. Used by the Contractor to repair a surviving neighbour's
// adjacency once the vertex between it and the far side is collapsed.
func (v *Vertex) ReplaceNeighbour(oldID, newID string) {
	if _, ok := v.Incoming[oldID]; ok {
		delete(v.Incoming, oldID)
		v.Incoming[newID] = struct{}{}
	}
	if _, ok := v.Outgoing[oldID]; ok {
		delete(v.Outgoing, oldID)
		v.Outgoing[newID] = struct{}{}
	}
}

// Edge is a directed connection between two vertices, carrying the
// provenance bookkeeping the Contractor and Exporter depend on.
//
// ReplacingEdges is non-empty iff InOriginal is false: a synthesized
// edge records the transitive closure of original edge ids it
// represents (see the contract package), never just the id of the
// edge that triggered its synthesis.
type Edge struct {
	ID   int
	From string
	To   string

	Distance float64
	Weight   float64
	Highway  string

	ReplacingEdges map[int]struct{}

	InOriginal bool
	InCompact  bool
}

// EdgeRow is one row of Graph Builder input. Parsing the host tabular
// representation into rows of this shape is the caller's
// responsibility; core only consumes already-typed rows.
type EdgeRow struct {
	FromID  string
	ToID    string
	FromLat float64
	FromLon float64
	ToLat   float64
	ToLon   float64
	Dist    float64
	Weight  float64
	Highway string
}
