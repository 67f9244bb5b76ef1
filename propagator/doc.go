// Package propagator builds the read-only, per-target view of upwind
// neighbors that a kernel consumes to compute rhs
//
// What:
//
//   - Build filters a target's undirected neighbors down to those
//     eligible to feed its rhs, sorts them by ascending value, and
//     publishes the target's own meta.
//   - AddBackpointer lets the kernel record which upwind nodes it
//     actually used; algorithm.Update installs those as fresh upwind
//     edges after the kernel returns.
//
// Why:
//
//   - Three independent filters keep propagation both acyclic and
//     causally sound: a neighbor already fed by the target (upwind
//     cycle), a neighbor that is not itself locally consistent, and a
//     neighbor whose value is not strictly below the current wavefront
//     (queue-key threshold) are all excluded before a kernel ever sees
//     them.
//
// Complexity: Build is O(degree log degree) for the sort.
package propagator
