package roadgraph

import (
	"github.com/osmroute/compactgraph/component"
	"github.com/osmroute/compactgraph/contract"
	"github.com/osmroute/compactgraph/core"
	"github.com/osmroute/compactgraph/export"
	"github.com/osmroute/compactgraph/prune"
	"github.com/osmroute/compactgraph/router"
)

// Compact runs the full pipeline — Builder, Analyzer, Pruner,
// Contractor, Exporter — over rows and returns the resulting graph
// (for callers that want to build a router.Graph on it afterward)
// alongside the Exporter's tables.
//
// An empty component.ErrEmptyGraph graph (zero rows) is reported as
// ErrNoRows instead, since roadgraph's contract is "build me a
// network", not "handle degenerate input silently".
func Compact(rows []core.EdgeRow, opts ...contract.Option) (*core.Graph, *export.Tables, error) {
	if len(rows) == 0 {
		return nil, nil, ErrNoRows
	}

	g := core.NewGraph()
	for _, row := range rows {
		if _, err := g.AddEdgeRow(row); err != nil {
			return nil, nil, err
		}
	}

	labels, largest, err := component.Analyze(g)
	if err != nil {
		return nil, nil, err
	}

	prune.Prune(g, labels, largest)
	contract.Contract(g, opts...)

	tables, err := export.Build(g)
	if err != nil {
		return nil, nil, err
	}

	return g, tables, nil
}

// Adjacency builds a router.Graph over g, the convenience step between
// Compact's output and running Router queries.
func Adjacency(g *core.Graph) (*router.Graph, error) {
	return router.BuildAdjacency(g)
}
