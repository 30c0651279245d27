package export

import "errors"

// ErrInvalidCoordinate is returned when an edge endpoint's (lat, lon)
// fails s2.LatLng.IsValid() — latitude outside [-90, 90] or longitude
// outside [-180, 180].
var ErrInvalidCoordinate = errors.New("export: edge endpoint has an invalid coordinate")
