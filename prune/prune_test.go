package prune_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmroute/compactgraph/component"
	"github.com/osmroute/compactgraph/core"
	"github.com/osmroute/compactgraph/prune"
)

// disconnected fragment: only the larger (here, tied so
// smallest-id) component survives.
func TestPrune_RemovesSmallerComponents(t *testing.T) {
	g := core.NewGraph()
	for _, row := range []core.EdgeRow{
		{FromID: "A", ToID: "B"},
		{FromID: "X", ToID: "Y"},
	} {
		_, err := g.AddEdgeRow(row)
		require.NoError(t, err)
	}

	labels, largest, err := component.Analyze(g)
	require.NoError(t, err)

	prune.Prune(g, labels, largest)

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.False(t, g.HasVertex("X"))
	require.False(t, g.HasVertex("Y"))
	require.Len(t, g.Edges(), 1)
	require.Equal(t, "A", g.Edges()[0].From)
}

func TestPrune_ChecksBothEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: "B"})
	require.NoError(t, err)

	// Simulate a mislabeled Analyzer result where "A" survives but "B"
	// does not, exercising the both-endpoints check directly rather
	// than through Analyze (which would never produce this labeling).
	labels := map[string]int{"A": 0, "B": 1}
	prune.Prune(g, labels, 0)

	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("B"))
	require.Empty(t, g.Edges())
}
