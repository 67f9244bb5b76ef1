package propagator

import (
	"sort"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/queue"
	"github.com/gowavefront/estar/upwind"
)

// Propagator is the filtered, sorted view of a target node's eligible
// upwind neighbors, plus the backpointers a kernel chooses to record.
type Propagator struct {
	graph  *cspace.Graph
	Target cspace.Node
	// Meta is the target's own traversability coefficient, published
	// for the kernel to consult.
	Meta float64
	// Eligible holds the neighbors that survived all three filters,
	// sorted by ascending Value.
	Eligible []cspace.Node

	backpointers []cspace.Node
}

// Build constructs a Propagator for target out of its undirected
// neighbor list, applying three filters:
//
//  1. upwind-cycle check: exclude n if n is already downwind of
//     target (an edge target -> n exists), so n can't also become
//     upwind of target;
//  2. local consistency: exclude n whose value != rhs;
//  3. queue-key threshold: exclude n whose value is not strictly below
//     the smallest key currently on the queue (or +Inf if the queue is
//     empty).
func Build(g *cspace.Graph, uw *upwind.Registry, q *queue.Queue, target cspace.Node, neighbors []cspace.Node) *Propagator {
	kMin, hasMin := q.MinKey()
	if !hasMin {
		kMin = numeric.Infinity
	}

	eligible := make([]cspace.Node, 0, len(neighbors))
	for _, n := range neighbors {
		if uw.HasEdge(target, n) {
			continue
		}
		if !numeric.WithinEpsilon(g.Value(n), g.Rhs(n)) {
			continue
		}
		if g.Value(n) >= kMin {
			continue
		}
		eligible = append(eligible, n)
	}
	sort.Slice(eligible, func(i, j int) bool {
		return g.Value(eligible[i]) < g.Value(eligible[j])
	})

	return &Propagator{
		graph:    g,
		Target:   target,
		Meta:     g.Meta(target),
		Eligible: eligible,
	}
}

// Value returns n's currently published value, for kernels that need
// to look up a specific eligible neighbor's cost.
func (p *Propagator) Value(n cspace.Node) float64 {
	return p.graph.Value(n)
}

// Coord returns n's 2-D coordinate, if one was ever recorded. Only the
// LSM kernel uses this, to test axis-orthogonality between the primary
// and candidate secondary neighbor.
func (p *Propagator) Coord(n cspace.Node) (x, y int, ok bool) {
	return p.graph.Coord(n)
}

// AddBackpointer records that the kernel used n to compute the
// target's rhs. The algorithm's update step replaces the target's incoming upwind
// edges with exactly this set after the kernel returns.
func (p *Propagator) AddBackpointer(n cspace.Node) {
	p.backpointers = append(p.backpointers, n)
}

// Backpointers returns the upwind nodes the kernel recorded via
// AddBackpointer, in the order they were added.
func (p *Propagator) Backpointers() []cspace.Node {
	return p.backpointers
}
