// Package contract implements the Contractor: it removes degree-2
// "intermediate" vertices that add no routing choice, replacing their
// incident edges with through-edges that preserve cumulative distance
// and weight.
//
// Two shapes are collapsed:
//
//   - intermediate-single: exactly one in-neighbour a, one out-neighbour
//     b, a != b. The incident edges a->v, v->b fold into one new edge
//     a->b.
//   - intermediate-double: two in-neighbours and two out-neighbours but
//     only two distinct neighbours a, b (i.e. a<->v<->b both ways). The
//     four incident edges fold into two new edges a->b and b->a, each
//     carrying half the four-edge round-trip sum.
//
// Contract loops to a fixed point, since collapsing one vertex in a
// chain of length 3 or more can make its neighbour newly eligible.
//
// Grounded on other_examples/azybler-map_router's pkg/ch.Contract: a
// fixed-point worklist over the vertex set, synthesizing shortcut
// edges and logging progress with the standard log package, since this
// is exactly the kind of long-running batch transform over a large OSM
// extract that benefits from progress output.
package contract
