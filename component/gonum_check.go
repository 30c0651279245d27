//go:build gonumcheck

package component

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/osmroute/compactgraph/core"
)

// CrossCheck is an independent oracle for Analyze, built on a real
// ecosystem graph library rather than our own union-find. It mirrors
// g's undirected projection into a gonum.org/v1/gonum/graph/simple
// UndirectedGraph (OSM string ids assigned sequential int64 node ids
// via a side table, since gonum nodes are keyed by int64) and runs
// gonum's own topo.ConnectedComponents against it.
//
// It returns an error if the component-size multiset gonum reports
// disagrees with labels (the output of Analyze) — not if the label
// *numbers* differ, since gonum and Analyze are free to assign
// different integers to the same partition.
//
// Built only under the gonumcheck tag: this is a correctness harness
// for development and CI, not part of the default build, since it
// duplicates O(V+E) work Analyze already did.
func CrossCheck(g *core.Graph, labels map[string]int) error {
	ids := g.VertexIDs()

	idToNode := make(map[string]int64, len(ids))
	ug := simple.NewUndirectedGraph()
	for i, id := range ids {
		idToNode[id] = int64(i)
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		fu, tu := idToNode[e.From], idToNode[e.To]
		if fu == tu {
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(fu), T: simple.Node(tu)})
	}

	gonumComponents := topo.ConnectedComponents(ug)
	gonumSizes := make([]int, 0, len(gonumComponents))
	for _, c := range gonumComponents {
		gonumSizes = append(gonumSizes, len(c))
	}
	sort.Ints(gonumSizes)

	ourSizes := make(map[int]int, len(labels))
	for _, label := range labels {
		ourSizes[label]++
	}
	ourSizesSorted := make([]int, 0, len(ourSizes))
	for _, size := range ourSizes {
		ourSizesSorted = append(ourSizesSorted, size)
	}
	sort.Ints(ourSizesSorted)

	if len(gonumSizes) != len(ourSizesSorted) {
		return fmt.Errorf("component: gonum found %d components, union-find found %d", len(gonumSizes), len(ourSizesSorted))
	}
	for i := range gonumSizes {
		if gonumSizes[i] != ourSizesSorted[i] {
			return fmt.Errorf("component: component size distribution mismatch: gonum=%v union-find=%v", gonumSizes, ourSizesSorted)
		}
	}

	return nil
}
