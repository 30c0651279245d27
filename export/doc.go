// Package export implements the Exporter: it projects a
// contracted Graph into the three flat tables the host system
// persists — compact edges, original edges, and the compact-to-original
// id map — using a fixed column schema.
//
// Coordinate validation uses github.com/blevesearch/geo/s2's LatLng: Build
// fails with ErrInvalidCoordinate, returning no tables, if either
// endpoint's (lat, lon) of any projected edge fails s2.LatLng.IsValid(),
// rather than reimplementing the latitude/longitude range check by hand.
package export
