// Package core defines the in-memory road-network graph model — Vertex,
// Edge, and Graph — and the Graph Builder that materializes a Graph from
// a stream of input edge rows.
//
// Vertex and Edge are identified the way OpenStreetMap data identifies
// them: vertices by an opaque string (osm) id, edges by a small
// monotonically increasing integer assigned by the Graph that created
// them. A Graph owns both catalogs (vertices map[string]*Vertex, edges
// []*Edge) and is the only thing that may mutate them; downstream
// pipeline stages (component, prune, contract, export) receive a *Graph;
// prune and contract rewrite it in place, component and export only
// read it.
//
// Concurrency: Graph guards its vertex catalog and its edge vector with
// separate sync.RWMutex locks (muVert, muEdge), exactly as
// katalvlaran/lvlath's core.Graph does, so a caller may read a Graph
// (e.g. for provenance queries) from one goroutine while another stage
// of the pipeline is still being handed the same Graph by the caller.
// No stage in this module runs its own work concurrently; the locks
// exist for callers, not for the pipeline itself.
package core
