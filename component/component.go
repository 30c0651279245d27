package component

import (
	"sort"

	"github.com/osmroute/compactgraph/core"
)

// dsu is a disjoint-set-union structure over string vertex ids, with
// path compression and union by rank, as in
// katalvlaran/lvlath/prim_kruskal.Kruskal.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU(ids []string) *dsu {
	d := &dsu{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
		d.rank[id] = 0
	}

	return d
}

// find walks up to the root with path compression.
func (d *dsu) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets containing u and v by rank.
func (d *dsu) union(u, v string) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}
}

// Analyze labels every vertex of g with a weakly-connected-component
// id (≥ 0, no -1 sentinel in the result) and returns the id of the
// largest component, ties broken by smallest vertex id in the
// component.
//
// Returns ErrEmptyGraph if g has no vertices.
func Analyze(g *core.Graph) (labels map[string]int, largest int, err error) {
	ids := g.VertexIDs() // sorted, deterministic
	if len(ids) == 0 {
		return nil, -1, ErrEmptyGraph
	}

	d := newDSU(ids)
	for _, e := range g.Edges() {
		d.union(e.From, e.To)
	}

	// Group vertices by root, recording each group's minimum vertex id
	// so that component labels — and the largest-component tie-break —
	// are determined purely by vertex ids, independent of which id the
	// union-find structure happened to pick as root.
	groupMin := make(map[string]string) // root -> min vertex id seen
	groupSize := make(map[string]int)   // root -> size
	for _, id := range ids {
		root := d.find(id)
		groupSize[root]++
		if cur, ok := groupMin[root]; !ok || id < cur {
			groupMin[root] = id
		}
	}

	roots := make([]string, 0, len(groupMin))
	for root := range groupMin {
		roots = append(roots, root)
	}
	// Sort roots by their group's minimum vertex id so label 0 is
	// always the component containing the lexicographically smallest
	// vertex id, label 1 the next, and so on.
	sort.Slice(roots, func(i, j int) bool { return groupMin[roots[i]] < groupMin[roots[j]] })

	rootLabel := make(map[string]int, len(roots))
	for i, root := range roots {
		rootLabel[root] = i
	}

	labels = make(map[string]int, len(ids))
	for _, id := range ids {
		labels[id] = rootLabel[d.find(id)]
	}

	largest = 0
	bestSize := groupSize[roots[0]]
	for i := 1; i < len(roots); i++ {
		if groupSize[roots[i]] > bestSize {
			bestSize = groupSize[roots[i]]
			largest = i
		}
	}

	return labels, largest, nil
}
