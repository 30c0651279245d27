// Package roadgraph is a thin façade wiring the five pipeline stages —
// Builder, Analyzer, Pruner, Contractor, Exporter — end to end, and a
// convenience step to build a Router adjacency over the result.
//
// Compact is the one entry point most callers need: it takes Builder
// rows and returns export tables for the contracted, largest-component
// graph. Callers who need more control (repeated Router queries,
// inspecting the graph between stages) use the constituent packages
// directly.
package roadgraph
