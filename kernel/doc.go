// Package kernel implements the three pluggable interpolation kernels:
// NF1 (non-interpolating), Alpha (isotropic, graph-agnostic) and LSM
// (Level-Set-Method, 4-connected grids only).
//
// What:
//
//   - Kernel: the shared interface (Compute, FreespaceMeta,
//     ObstacleMeta, Scale) every variant implements.
//   - NF1, Alpha, LSM: the three concrete, data-only kernels.
//
// Why:
//
//   - A minimal trait suffices: each kernel is a small
//     struct plus one Compute method, called by algorithm.Algorithm
//     through the Kernel interface.
//   - scale must be > 0: the legacy source this was ported from treats
//     scale=0 as a precondition violation (it produces NaNs), so every
//     constructor here rejects it instead of propagating NaN silently.
//
// Complexity: Compute is O(1) given an already-sorted, already-filtered
// propagator.Propagator (that sort/filter cost is propagator.Build's).
package kernel
