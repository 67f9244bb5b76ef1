package algorithm

import (
	"math"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/kernel"
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/propagator"
	"github.com/gowavefront/estar/queue"
	"github.com/gowavefront/estar/upwind"
)

// Algorithm is the incremental solver driver. It owns no graph
// topology itself; callers (typically a grid.Grid) build the
// cspace.Graph and hand it in, then drive propagation via ComputeOne.
type Algorithm struct {
	g    *cspace.Graph
	q    *queue.Queue
	uw   *upwind.Registry
	k    kernel.Kernel
	slack float64

	pendingReset bool
}

// New returns an Algorithm operating over g, using k to compute rhs
// values and slack as the consistency tolerance passed to ComputeOne's
// |value-rhs| test.
func New(g *cspace.Graph, k kernel.Kernel, slack float64) *Algorithm {
	return &Algorithm{
		g:     g,
		q:     queue.New(),
		uw:    upwind.New(),
		k:     k,
		slack: slack,
	}
}

// Graph returns the underlying cspace.Graph.
func (a *Algorithm) Graph() *cspace.Graph { return a.g }

// MinKey returns the smallest key currently on the queue; ok is false
// if the queue is empty.
func (a *Algorithm) MinKey() (float64, bool) { return a.q.MinKey() }

// MaxKey returns the largest key currently on the queue; ok is false
// if the queue is empty.
func (a *Algorithm) MaxKey() (float64, bool) { return a.q.MaxKey() }

// QueueLen returns the number of nodes currently on the queue.
func (a *Algorithm) QueueLen() int { return a.q.Len() }

// AddVertex adds a new node with value=rhs=+Infinity and flag=NONE. It
// is consistent by construction and therefore never enters the queue.
func (a *Algorithm) AddVertex(meta float64) cspace.Node {
	return a.g.AddVertex(meta)
}

// AddNeighbor links u and v as undirected cspace neighbors. It does
// not trigger repropagation: neither node's rhs is recomputed and
// neither node is queued.
func (a *Algorithm) AddNeighbor(u, v cspace.Node) error {
	return a.g.AddNeighbor(u, v)
}

// InitMeta sets node's meta directly, without re-propagating. Intended
// for bulk initialization before the solver starts running.
func (a *Algorithm) InitMeta(node cspace.Node, meta float64) {
	a.g.SetMeta(node, meta)
}

// InitAllMeta sets every node's meta to a uniform value, without
// re-propagating.
func (a *Algorithm) InitAllMeta(meta float64) {
	for _, n := range a.g.AllNodes() {
		a.g.SetMeta(n, meta)
	}
}

// SetMeta updates node's meta and, if it actually changed, immediately
// re-derives its rhs and re-queues it.
func (a *Algorithm) SetMeta(node cspace.Node, meta float64) {
	if numeric.WithinEpsilon(a.g.Meta(node), meta) {
		return
	}
	a.g.SetMeta(node, meta)
	a.update(node)
}

// AddGoal marks node as a goal with the given boundary value. Adding
// an already-identical goal (same node, same value, already flagged
// goal) is a no-op.
func (a *Algorithm) AddGoal(node cspace.Node, value float64) {
	flag := a.g.GetFlag(node)
	if flag.IsGoal() && numeric.WithinEpsilon(a.g.Rhs(node), value) {
		return
	}
	a.g.SetFlag(node, flag.WithGoal(true))
	a.g.SetRhs(node, value)
	if !numeric.WithinEpsilon(a.g.Value(node), value) {
		a.g.SetValue(node, numeric.Infinity)
		onQueue := a.q.Requeue(node, numeric.Infinity, value)
		a.g.SetFlag(node, a.g.GetFlag(node).WithOnQueue(onQueue))
	}
}

// RemoveGoal clears node's goal bit and schedules a deferred Reset on
// the next ComputeOne call.
func (a *Algorithm) RemoveGoal(node cspace.Node) {
	a.g.SetFlag(node, a.g.GetFlag(node).WithGoal(false))
	a.pendingReset = true
}

// RemoveAllGoals clears every node's goal bit and schedules a deferred
// Reset on the next ComputeOne call.
func (a *Algorithm) RemoveAllGoals() {
	for _, n := range a.g.AllNodes() {
		if a.g.GetFlag(n).IsGoal() {
			a.g.SetFlag(n, a.g.GetFlag(n).WithGoal(false))
		}
	}
	a.pendingReset = true
}

// HaveWork reports whether a following ComputeOne call would do
// anything: either a Reset is pending, or the queue is non-empty.
func (a *Algorithm) HaveWork() bool {
	return a.pendingReset || !a.q.IsEmpty()
}

// ComputeOne performs a single LPA* repair step: running the deferred
// reset if one is pending, then popping and settling one queue entry.
// It is a no-op if there is no pending reset and the queue is empty.
func (a *Algorithm) ComputeOne() {
	if a.pendingReset {
		a.reset()
		a.pendingReset = false
	}
	if a.q.IsEmpty() {
		return
	}

	v := a.q.Pop()
	a.g.SetFlag(v, a.g.GetFlag(v).WithOnQueue(false))

	value := a.g.Value(v)
	rhs := a.g.Rhs(v)
	if math.Abs(value-rhs) <= a.slack {
		return
	}

	if value > rhs {
		// Lower wave: v has found a cheaper path. Commit it and let its
		// neighbors try to improve off the new value.
		a.g.SetValue(v, rhs)
		for _, n := range a.g.Neighbors(v) {
			a.update(n)
		}
		return
	}

	// Raise wave: v's best known path is gone. Invalidate it and repair
	// anything that was computed from it before touching v itself, so v
	// doesn't feed off an about-to-be-stale value mid-expansion.
	a.g.SetValue(v, numeric.Infinity)
	downwind := a.uw.DownwindOf(v)
	for _, s := range downwind {
		a.update(s)
	}
	a.update(v)
}

// reset clears the queue, every upwind edge and every non-goal node's
// value/rhs/flag, then re-seeds the queue from the preserved goal set.
func (a *Algorithm) reset() {
	a.q.Clear()
	a.uw = upwind.New()
	nodes := a.g.AllNodes()
	for _, n := range nodes {
		a.g.SetValue(n, numeric.Infinity)
		if !a.g.GetFlag(n).IsGoal() {
			a.g.SetRhs(n, numeric.Infinity)
			a.g.SetFlag(n, cspace.FlagNone)
		}
	}
	for _, n := range nodes {
		if a.g.GetFlag(n).IsGoal() {
			onQueue := a.q.Requeue(n, a.g.Value(n), a.g.Rhs(n))
			a.g.SetFlag(n, a.g.GetFlag(n).WithOnQueue(onQueue))
		}
	}
}

// update re-derives node's rhs from its upwind-eligible neighbors,
// rewrites its upwind backpointer edges and re-queues it if it is now
// locally inconsistent. Goal nodes are never touched: their rhs is a
// boundary condition, not a derived quantity.
func (a *Algorithm) update(node cspace.Node) {
	if a.g.GetFlag(node).IsGoal() {
		return
	}

	p := propagator.Build(a.g, a.uw, a.q, node, a.g.Neighbors(node))
	rhs := a.k.Compute(p)
	a.g.SetRhs(node, rhs)

	a.uw.RemoveIncoming(node)
	for _, bp := range p.Backpointers() {
		a.uw.AddEdge(bp, node)
	}

	onQueue := a.q.Requeue(node, a.g.Value(node), rhs)
	a.g.SetFlag(node, a.g.GetFlag(node).WithOnQueue(onQueue))
}
