package router

import "errors"

var (
	// ErrEmptySource reports an empty source vertex id. No function in
	// this package returns it: Dijkstra takes an integer index and
	// reports a bad one with ErrSourceNotFound.
	ErrEmptySource = errors.New("router: source vertex id is empty")

	// ErrSourceNotFound is returned by Dijkstra when the source index is
	// outside [0, N).
	ErrSourceNotFound = errors.New("router: source vertex not found")

	// ErrEmptyGraph is returned when BuildAdjacency is given a graph
	// with no live (InCompact) vertices.
	ErrEmptyGraph = errors.New("router: graph has no vertices")

	// ErrInvalidDimensions is returned by NewCostMatrix for a
	// non-positive side length.
	ErrInvalidDimensions = errors.New("router: matrix dimensions must be > 0")

	// ErrIndexOutOfBounds is returned by CostMatrix.At/Set for an
	// out-of-range row or column.
	ErrIndexOutOfBounds = errors.New("router: index out of bounds")
)
