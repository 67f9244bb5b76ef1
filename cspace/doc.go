// Package cspace implements the undirected configuration-space graph that
// underlies the wavefront solver: a dense adjacency list over stable
// integer vertex identifiers, with per-node value/rhs/meta/flag state kept
// in parallel slices (struct-of-arrays) rather than in the node payload
// itself.
//
// What:
//
//   - Graph: thread-safe undirected graph, vertices identified by int.
//   - Flag: the {NONE, OPEN, GOAL, OPEN-GOAL} state sum type, modeled as
//     two independent booleans (on-queue, is-goal).
//
// Why:
//
//   - Struct-of-arrays storage keeps the priority queue's requeue
//     operation and the upwind registry simple: both just index into
//     plain slices instead of chasing pointers through node objects.
//   - A separate mutex per concern (muVert for the vertex table,
//     muEdgeAdj for edges/adjacency) lets vertex-state and
//     adjacency-list access interleave without contending on a single
//     lock, even though the solver itself runs single-threaded: the
//     graph is shared infrastructure the risk layer's several Facades
//     iterate over sequentially but never concurrently.
//
// Errors: the domain errors here are ErrVertexNotFound and
// ErrSelfLoop, reported as values, never panics.
package cspace
