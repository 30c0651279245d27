package component

import "errors"

// ErrEmptyGraph indicates the graph has zero vertices, so there is no
// largest component to report. The caller (the roadgraph façade, or
// prune directly) must short-circuit on this error and produce
// degenerate/empty output rather than treat it as a hard failure.
var ErrEmptyGraph = errors.New("component: graph has no vertices")
