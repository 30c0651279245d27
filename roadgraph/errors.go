package roadgraph

import "errors"

// ErrNoRows is returned when Compact is called with zero Builder rows.
var ErrNoRows = errors.New("roadgraph: no edge rows supplied")
