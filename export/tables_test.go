package export_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osmroute/compactgraph/contract"
	"github.com/osmroute/compactgraph/core"
	"github.com/osmroute/compactgraph/export"
)

func TestBuild_UntouchedEdgeMapsToItself(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdgeRow(core.EdgeRow{
		FromID: "A", ToID: "B",
		FromLat: 1, FromLon: 2, ToLat: 3, ToLon: 4,
		Dist: 5, Weight: 5, Highway: "primary",
	})
	require.NoError(t, err)

	tables, err := export.Build(g)
	require.NoError(t, err)

	require.Len(t, tables.Original, 1)
	require.Len(t, tables.Compact, 1)
	require.Len(t, tables.Map, 1)
	require.Equal(t, tables.Map[0].CompactID, tables.Map[0].OriginalID)
}

func TestBuild_ContractedChainMapsToAllOriginals(t *testing.T) {
	g := core.NewGraph()
	var ids []int
	for _, row := range []core.EdgeRow{
		{FromID: "A", ToID: "B", Dist: 1, Weight: 1},
		{FromID: "B", ToID: "C", Dist: 1, Weight: 1},
		{FromID: "C", ToID: "D", Dist: 1, Weight: 1},
	} {
		e, err := g.AddEdgeRow(row)
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}
	contract.Contract(g)

	tables, err := export.Build(g)
	require.NoError(t, err)

	require.Len(t, tables.Original, 3)
	require.Len(t, tables.Compact, 1)
	require.Len(t, tables.Map, 3)

	var mapped []int
	for _, m := range tables.Map {
		require.Equal(t, tables.Compact[0].ID, m.CompactID)
		mapped = append(mapped, m.OriginalID)
	}
	require.ElementsMatch(t, ids, mapped)
}

func TestBuild_RejectsInvalidCoordinate(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdgeRow(core.EdgeRow{
		FromID: "A", ToID: "B",
		FromLat: 200, FromLon: 2,
	})
	require.NoError(t, err)

	_, err = export.Build(g)
	require.ErrorIs(t, err, export.ErrInvalidCoordinate)
}
