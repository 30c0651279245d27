// Package contract implements the Contractor; see doc.go.
package contract

import (
	"fmt"

	"github.com/osmroute/compactgraph/core"
)

// Contract collapses every intermediate-single and intermediate-double
// vertex in g, looping to a fixed point: collapsing a vertex in a
// chain of length 3 or more can make its surviving neighbour newly
// eligible, so a single sweep over VertexIDs is not enough.
//
// Contract never fails its caller: a vertex that matches a shape by
// neighbour-set size but has fewer live incident edges than the shape
// requires (ErrDanglingShape) is left untouched and logged rather than
// returned as an error, since that combination can only arise from a
// caller mutating the graph outside this package and should not abort
// an otherwise-successful contraction of the rest of the graph.
func Contract(g *core.Graph, opts ...Option) {
	cfg := newConfig(opts)

	for pass := 1; ; pass++ {
		collapsed := 0

		for _, id := range g.VertexIDs() {
			v := g.Vertex(id)
			if v == nil || !v.InCompact {
				continue
			}

			var (
				ok  bool
				err error
			)
			switch {
			case v.IsIntermediateSingle():
				ok, err = collapseSingle(g, v)
			case v.IsIntermediateDouble():
				ok, err = collapseDouble(g, v)
			}
			if err != nil {
				cfg.logger.Printf("contract: vertex %q: %v", v.ID, err)
			}
			if ok {
				collapsed++
			}
		}

		if cfg.progress {
			cfg.logger.Printf("contract: pass %d collapsed %d vertices", pass, collapsed)
		}

		if collapsed == 0 {
			return
		}
	}
}

// soleElement returns the single key of a one-element set.
func soleElement(set map[string]struct{}) string {
	for id := range set {
		return id
	}

	return ""
}

// sortedPair returns the two elements of a two-element set in
// ascending order, giving the Contractor a deterministic a,b labeling
// for the intermediate-double shape regardless of map iteration order.
func sortedPair(set map[string]struct{}) (a, b string) {
	var x, y string
	first := true
	for id := range set {
		if first {
			x, first = id, false
			continue
		}
		y = id
	}
	if x <= y {
		return x, y
	}

	return y, x
}

// liveIncidentEdges returns, in edge-vector order, every edge currently
// InCompact that has id as its From or To.
func liveIncidentEdges(g *core.Graph, id string) []*core.Edge {
	var out []*core.Edge
	for _, e := range g.Edges() {
		if e.InCompact && (e.From == id || e.To == id) {
			out = append(out, e)
		}
	}

	return out
}

// foldEdges marks the given edges non-compact and returns their
// combined distance, combined weight, the highway tag of the longest
// (by distance) of them, and the transitive closure of original edge
// ids they represent. A synthesized edge already
// carries a closure in its own ReplacingEdges, so folding it again
// unions that closure rather than nesting a reference to it.
func foldEdges(edges []*core.Edge) (dist, weight float64, highway string, replacing map[int]struct{}) {
	replacing = make(map[int]struct{})

	var longest *core.Edge
	for _, e := range edges {
		dist += e.Distance
		weight += e.Weight
		if e.InOriginal {
			replacing[e.ID] = struct{}{}
		} else {
			for id := range e.ReplacingEdges {
				replacing[id] = struct{}{}
			}
		}
		if longest == nil || e.Distance > longest.Distance {
			longest = e
		}
		e.InCompact = false
	}
	if longest != nil {
		highway = longest.Highway
	}

	return dist, weight, highway, replacing
}

// collapseSingle folds v's two incident edges (a->v, v->b) into one
// synthesized edge a->b, repairs a and b's neighbour sets, and flips
// v.InCompact off. Reports whether a collapse actually happened; returns
// ErrDanglingShape (and no collapse) if v matches the shape by
// neighbour-set size but fewer than 2 live incident edges back it.
func collapseSingle(g *core.Graph, v *core.Vertex) (bool, error) {
	a := soleElement(v.Incoming)
	b := soleElement(v.Outgoing)

	incident := liveIncidentEdges(g, v.ID)
	if len(incident) < 2 {
		return false, fmt.Errorf("%w: want 2 live incident edges, have %d", ErrDanglingShape, len(incident))
	}
	take := incident[:2]

	dist, weight, highway, replacing := foldEdges(take)

	if na := g.Vertex(a); na != nil {
		na.ReplaceNeighbour(v.ID, b)
	}
	if nb := g.Vertex(b); nb != nil {
		nb.ReplaceNeighbour(v.ID, a)
	}

	g.AddSyntheticEdge(a, b, dist, weight, highway, replacing)
	v.InCompact = false

	return true, nil
}

// collapseDouble folds v's four incident edges into two synthesized
// edges a->b and b->a, each carrying half the four-edge round-trip
// sum, repairs a and b's neighbour sets, and flips v.InCompact off.
// Returns ErrDanglingShape (and no collapse) if v matches the shape by
// neighbour-set size but fewer than 4 live incident edges back it.
func collapseDouble(g *core.Graph, v *core.Vertex) (bool, error) {
	a, b := sortedPair(v.AllNeighbours())

	incident := liveIncidentEdges(g, v.ID)
	if len(incident) < 4 {
		return false, fmt.Errorf("%w: want 4 live incident edges, have %d", ErrDanglingShape, len(incident))
	}
	take := incident[:4]

	dist, weight, highway, replacing := foldEdges(take)
	half := func(total float64) float64 { return total / 2 }

	if na := g.Vertex(a); na != nil {
		na.ReplaceNeighbour(v.ID, b)
	}
	if nb := g.Vertex(b); nb != nil {
		nb.ReplaceNeighbour(v.ID, a)
	}

	g.AddSyntheticEdge(a, b, half(dist), half(weight), highway, cloneSet(replacing))
	g.AddSyntheticEdge(b, a, half(dist), half(weight), highway, replacing)
	v.InCompact = false

	return true, nil
}

// cloneSet returns a shallow copy, since the two synthesized edges of
// an intermediate-double collapse must each own an independent
// ReplacingEdges map rather than alias the same one.
func cloneSet(src map[int]struct{}) map[int]struct{} {
	dst := make(map[int]struct{}, len(src))
	for id := range src {
		dst[id] = struct{}{}
	}

	return dst
}
