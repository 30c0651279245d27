package contract

import "errors"

// ErrDanglingShape is returned when a vertex matches an intermediate
// shape by neighbour-set size but the edge vector does not actually
// carry enough live incident edges to back it (a malformed graph, or
// one already partially contracted by a caller bypassing Contract).
var ErrDanglingShape = errors.New("contract: vertex matches intermediate shape but lacks enough live incident edges")
