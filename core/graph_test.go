package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmroute/compactgraph/core"
)

func TestAddEdgeRow_BuildsVerticesAndNeighbours(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: "B", Dist: 1, Weight: 1})
	require.NoError(t, err)
	_, err = g.AddEdgeRow(core.EdgeRow{FromID: "B", ToID: "C", Dist: 2, Weight: 2})
	require.NoError(t, err)

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.True(t, g.HasVertex("C"))

	b := g.Vertex("B")
	require.Contains(t, b.Incoming, "A")
	require.Contains(t, b.Outgoing, "C")
	require.True(t, b.IsIntermediateSingle())

	require.Len(t, g.Edges(), 2)
}

func TestAddEdgeRow_RejectsMissingID(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdgeRow(core.EdgeRow{FromID: "", ToID: "B"})
	require.ErrorIs(t, err, core.ErrMissingID)

	_, err = g.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: ""})
	require.ErrorIs(t, err, core.ErrMissingID)
}

func TestAddEdgeRow_DuplicateEdgesRetainedSeparately(t *testing.T) {
	g := core.NewGraph()

	e1, err := g.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: "B", Dist: 1})
	require.NoError(t, err)
	e2, err := g.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: "B", Dist: 5})
	require.NoError(t, err)

	require.NotEqual(t, e1.ID, e2.ID)
	require.Len(t, g.Edges(), 2)

	a := g.Vertex("A")
	require.Len(t, a.Outgoing, 1) // neighbour sets coalesce duplicates
}

func TestEdgeIDs_MonotonicPerGraph(t *testing.T) {
	g1 := core.NewGraph()
	g2 := core.NewGraph()

	e1, err := g1.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: "B"})
	require.NoError(t, err)
	e2, err := g2.AddEdgeRow(core.EdgeRow{FromID: "X", ToID: "Y"})
	require.NoError(t, err)

	require.Equal(t, 1, e1.ID)
	require.Equal(t, 1, e2.ID) // separate sessions never share the counter
}

func TestIntermediateDoubleShape(t *testing.T) {
	g := core.NewGraph()
	for _, row := range []core.EdgeRow{
		{FromID: "A", ToID: "B"},
		{FromID: "B", ToID: "A"},
		{FromID: "B", ToID: "C"},
		{FromID: "C", ToID: "B"},
	} {
		_, err := g.AddEdgeRow(row)
		require.NoError(t, err)
	}

	b := g.Vertex("B")
	require.True(t, b.IsIntermediateDouble())
	require.False(t, b.IsIntermediateSingle())
}

func TestDeleteEdgesWhere(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdgeRow(core.EdgeRow{FromID: "A", ToID: "B"})
	require.NoError(t, err)
	_, err = g.AddEdgeRow(core.EdgeRow{FromID: "X", ToID: "Y"})
	require.NoError(t, err)

	g.DeleteEdgesWhere(func(e *core.Edge) bool { return e.From == "X" })

	require.Len(t, g.Edges(), 1)
	require.Equal(t, "A", g.Edges()[0].From)
}
