// Package prune implements the Component Pruner: it erases every
// vertex whose component label is not the largest, and every edge
// referencing a now-erased vertex.
//
// Checking only an edge's From id against the surviving vertex set
// would be a latent bug: it could retain a cross-component edge if the
// Analyzer ever mislabeled a vertex. Prune checks both From and To.
package prune
