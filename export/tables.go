package export

import (
	"fmt"
	"sort"

	"github.com/blevesearch/geo/s2"

	"github.com/osmroute/compactgraph/core"
)

// Build projects g into the three export tables. Every edge in the
// edge vector contributes a row to Original if InOriginal and a row to
// Compact if InCompact. Map is keyed by live compact edge id only: each
// InCompact edge contributes one or more rows describing the original
// edge ids it represents — itself, for an edge that survived untouched,
// or the ReplacingEdges closure for a synthesized edge. An edge that is
// InOriginal but no longer InCompact (folded away by contraction)
// contributes no Map row of its own.
//
// Build returns ErrInvalidCoordinate, wrapped with the offending
// vertex id, the first time an endpoint's (lat, lon) fails
// s2.LatLng.IsValid().
func Build(g *core.Graph) (*Tables, error) {
	t := &Tables{}

	for _, e := range g.Edges() {
		from := g.Vertex(e.From)
		to := g.Vertex(e.To)
		if from == nil || to == nil {
			continue
		}

		if err := validateCoord(from); err != nil {
			return nil, err
		}
		if err := validateCoord(to); err != nil {
			return nil, err
		}

		row := Row{
			ID:      e.ID,
			FromID:  e.From,
			ToID:    e.To,
			FromLat: from.Lat,
			FromLon: from.Lon,
			ToLat:   to.Lat,
			ToLon:   to.Lon,
			Dist:    e.Distance,
			Weight:  e.Weight,
			Highway: e.Highway,
		}

		if e.InOriginal {
			t.Original = append(t.Original, row)
		}
		if e.InCompact {
			t.Compact = append(t.Compact, row)

			if e.InOriginal {
				t.Map = append(t.Map, MapRow{CompactID: e.ID, OriginalID: e.ID})
			} else {
				ids := make([]int, 0, len(e.ReplacingEdges))
				for id := range e.ReplacingEdges {
					ids = append(ids, id)
				}
				sort.Ints(ids)
				for _, id := range ids {
					t.Map = append(t.Map, MapRow{CompactID: e.ID, OriginalID: id})
				}
			}
		}
	}

	sort.Slice(t.Map, func(i, j int) bool {
		if t.Map[i].CompactID != t.Map[j].CompactID {
			return t.Map[i].CompactID < t.Map[j].CompactID
		}
		return t.Map[i].OriginalID < t.Map[j].OriginalID
	})

	return t, nil
}

func validateCoord(v *core.Vertex) error {
	if !s2.LatLngFromDegrees(v.Lat, v.Lon).IsValid() {
		return fmt.Errorf("%w: vertex %q (%g, %g)", ErrInvalidCoordinate, v.ID, v.Lat, v.Lon)
	}

	return nil
}
