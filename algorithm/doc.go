// Package algorithm implements the LPA*-style solver driver: the glue
// between cspace.Graph, queue.Queue, upwind.Registry and a
// kernel.Kernel that performs incremental repair instead of
// recomputing the navigation function from scratch.
//
// What:
//
//   - Algorithm.ComputeOne: the single unit of progress a caller
//     repeatedly invokes from an event loop or a plain loop.
//   - AddGoal/RemoveGoal/RemoveAllGoals/SetMeta/InitMeta: the mutators
//     that seed and perturb the field.
//   - HaveWork: tells the caller whether any further ComputeOne call
//     would do anything.
//
// Why:
//
//   - Goal removal is handled via a deferred full Reset rather than
//     trying to maintain upwind invariants incrementally through
//     removal: the incremental version costs about the same and is far
//     more complex, so Reset wins on simplicity.
//   - The raise-wave expansion order (downwind-only, raised node last)
//     is the canonical choice, out of two compile-time variants the
//     legacy source carried.
//
// Complexity: ComputeOne is O(log n) for the pop plus O(degree log n)
// for its Update calls, where degree is bounded by the neighborhood
// (4/6/8 for grids).
package algorithm
