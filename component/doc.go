// Package component labels every vertex of a core.Graph with its
// weakly-connected-component id and identifies the largest component.
//
// A naive neighbour-merge pass over an edge list is fragile and
// order-sensitive at O(V^2); Analyze instead uses a union-find
// (disjoint-set) structure with path compression and union by rank,
// unioning From with To for
// every edge — grounded on katalvlaran/lvlath/prim_kruskal.Kruskal's
// DSU, generalized from "merge endpoints of the MST-candidate edge" to
// "merge endpoints of every edge" (Kruskal only unions edges it keeps;
// we union them all, since weak connectivity ignores weight entirely).
package component
