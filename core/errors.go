package core

import "errors"

// Sentinel errors returned by the core package. Callers branch on these
// with errors.Is; they are never wrapped with formatted strings at the
// definition site (only at call sites, via fmt.Errorf("%w", ...)).
var (
	// ErrMissingID indicates a Builder input row had an empty from_id or
	// to_id. This is the "malformed input" case of the error taxonomy:
	// the Builder rejects it at the boundary rather than synthesizing a
	// vertex for the empty string.
	ErrMissingID = errors.New("core: from_id/to_id must not be empty")

	// ErrVertexNotFound indicates an operation referenced a vertex id
	// that does not exist in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge id that
	// does not exist in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
