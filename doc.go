// Package estar computes interpolated navigation functions on a 2-D
// grid: for every cell it delivers a smooth scalar field whose value
// is the shortest traversal cost to the nearest goal, weighted by a
// per-cell traversability metric.
//
// The field is produced by an incremental wavefront solver patterned
// after LPA*: goals seed the wavefront, costs propagate outward
// through a pluggable interpolation kernel (NF1, Alpha or LSM), and
// the solver repairs the field as traversability or goal sets change,
// without recomputing from scratch.
//
// Everything a client needs lives behind facade.Facade:
//
//	f, err := facade.New("lsm", grid.FourConnected, 1.0, 0)
//	f.AddRange(0, 5, 0, 3, f.GetFreespaceMeta())
//	f.AddGoal(0, 0, 0)
//	for f.HaveWork() {
//		f.ComputeOne()
//	}
//	value, _ := f.GetValue(4, 2)
//
// Under the hood, the solver is layered bottom-up:
//
//	numeric/     — shared float constants and the quadratic root solver
//	cspace/      — the undirected C-space graph and the node flag model
//	queue/       — the min(value,rhs)-keyed priority queue
//	upwind/      — the directed upwind-edge overlay
//	propagator/  — the per-target filtered view of upwind neighbors
//	kernel/      — NF1, Alpha and LSM interpolation
//	algorithm/   — the LPA*-style driver tying queue/upwind/kernel together
//	flexgrid/    — the sdeque-based growable 2-D container
//	grid/        — geometric indexing, gradients and carrot steps
//	facade/      — the user-facing bundle above
//	risk/        — the probabilistic, multi-wavefront risk-fusion layer
//
// cmd/estardemo is a thin CLI wrapping facade.Facade for manual
// smoke-testing; it is not part of the package's public contract.
package estar
