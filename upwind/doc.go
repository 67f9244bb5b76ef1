// Package upwind implements the directed upwind-edge overlay: a second,
// separate graph over the same node ids as cspace.Graph, where an edge
// u -> v records "u's value was used to compute v's rhs".
//
// What:
//
//   - Registry.AddEdge / RemoveEdge / HasEdge / RemoveIncoming.
//   - Registry.DownwindOf: the set of nodes whose rhs was computed from
//     a given node, consulted during raise-wave propagation.
//
// Why:
//
//   - Upwind edges never participate in neighbor iteration (that's
//     cspace.Graph.Neighbors); they exist purely so algorithm.Algorithm
//     can revisit exactly the nodes a raised value might invalidate,
//     instead of rescanning the whole graph.
//   - Cycle avoidance: AddEdge(u,v) first removes v->u if present. Two
//     nodes computing each other's rhs would otherwise let raise
//     propagation recurse forever; multi-edge cycles beyond that are
//     prevented structurally by the kernel contract, so only the
//     two-cycle case needs handling here.
//
// Complexity: AddEdge/RemoveEdge/HasEdge are O(1) amortized;
// RemoveIncoming and DownwindOf are O(degree).
package upwind
