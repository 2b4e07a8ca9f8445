// Package core is adapted from the lvlath graph library's thread-safe,
// adjacency-list Graph type. Here it plays one narrow role: representing
// the point-hyperplane incidence graph G (see package incidence) that the
// Symmetry Oracle (package canon) canonicalizes. G is built exactly once
// and never mutated again, so the locking exists for safety and API
// parity with its ancestor, not because this repository runs concurrent
// graph mutations.
package core
