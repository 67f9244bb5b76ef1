package cspace

import (
	"sync"

	"github.com/gowavefront/estar/numeric"
)

// Node is a stable opaque handle to a vertex. Nodes are never recycled:
// the grid grows monotonically and ids are assigned in AddVertex order.
type Node int

// Graph is the undirected C-space graph plus its per-node LPA* state.
//
// Node attributes live in parallel slices indexed by Node (struct-of-
// arrays) rather than in a per-node struct: this is what lets the
// priority queue and upwind registry simply index into plain slices.
// muVert guards the vertex-state slices (value/rhs/meta/flag/coords);
// muEdgeAdj guards the adjacency list.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	value []float64
	rhs   []float64
	meta  []float64
	flag  []Flag

	// coords holds optional 2-D coordinates, populated by the grid
	// package. LSM's axis-orthogonality test needs these; the solver
	// core otherwise stays graph-generic, so coords may remain empty.
	coords []coord
	hasXY  bool

	adjacency [][]Node
}

type coord struct {
	x, y int
	set  bool
}

// NewGraph returns an empty C-space graph.
func NewGraph() *Graph {
	return &Graph{}
}

// NumNodes returns the number of vertices currently in the graph.
func (g *Graph) NumNodes() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return len(g.value)
}

// AddVertex appends a new node with the given initial meta, value=+Inf,
// rhs=+Inf and flag=FlagNone lifecycle. Returns the
// freshly assigned Node handle.
//
// Complexity: amortized O(1).
func (g *Graph) AddVertex(meta float64) Node {
	g.muVert.Lock()
	id := Node(len(g.value))
	g.value = append(g.value, numeric.Infinity)
	g.rhs = append(g.rhs, numeric.Infinity)
	g.meta = append(g.meta, meta)
	g.flag = append(g.flag, FlagNone)
	g.coords = append(g.coords, coord{})
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	g.adjacency = append(g.adjacency, nil)
	g.muEdgeAdj.Unlock()

	return id
}

// Valid reports whether id names a vertex currently in the graph.
func (g *Graph) Valid(id Node) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return int(id) >= 0 && int(id) < len(g.value)
}

// AddNeighbor links u and v with an undirected edge in the C-space
// graph. Idempotent: adding the same pair twice is a no-op. Returns
// ErrVertexNotFound if either id is unknown, ErrSelfLoop if u==v.
func (g *Graph) AddNeighbor(u, v Node) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.Valid(u) || !g.Valid(v) {
		return ErrVertexNotFound
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !containsNode(g.adjacency[u], v) {
		g.adjacency[u] = append(g.adjacency[u], v)
	}
	if !containsNode(g.adjacency[v], u) {
		g.adjacency[v] = append(g.adjacency[v], u)
	}
	return nil
}

func containsNode(s []Node, n Node) bool {
	for _, x := range s {
		if x == n {
			return true
		}
	}
	return false
}

// Neighbors returns the undirected neighbor list of id. The returned
// slice must not be mutated by the caller.
func (g *Graph) Neighbors(id Node) []Node {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return g.adjacency[id]
}

// SetCoord records the 2-D coordinate of id, consulted only by the LSM
// kernel's axis-orthogonality test and by grid/facade geometry. Grids
// call this right after AddVertex; graph-generic callers may ignore it.
func (g *Graph) SetCoord(id Node, x, y int) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.coords[id] = coord{x: x, y: y, set: true}
	g.hasXY = true
}

// Coord returns the coordinate recorded via SetCoord, and whether one
// was ever set for id.
func (g *Graph) Coord(id Node) (x, y int, ok bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	c := g.coords[id]
	return c.x, c.y, c.set
}

// Value returns the node's currently published cost-to-nearest-goal.
func (g *Graph) Value(id Node) float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.value[id]
}

// SetValue overwrites the node's published value.
func (g *Graph) SetValue(id Node, v float64) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.value[id] = v
}

// Rhs returns the node's one-step-lookahead estimate.
func (g *Graph) Rhs(id Node) float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.rhs[id]
}

// SetRhs overwrites the node's rhs.
func (g *Graph) SetRhs(id Node, v float64) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.rhs[id] = v
}

// Meta returns the node's kernel-specific traversability coefficient.
func (g *Graph) Meta(id Node) float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.meta[id]
}

// SetMeta overwrites the node's meta in place, without touching value,
// rhs or flag. Callers that need re-propagation after a meta change
// must do so themselves (see algorithm.Algorithm.SetMeta).
func (g *Graph) SetMeta(id Node, m float64) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.meta[id] = m
}

// GetFlag returns the node's current Flag.
func (g *Graph) GetFlag(id Node) Flag {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.flag[id]
}

// SetFlag overwrites the node's Flag.
func (g *Graph) SetFlag(id Node, f Flag) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.flag[id] = f
}

// AllNodes returns every node id currently in the graph, in ascending
// (insertion) order.
func (g *Graph) AllNodes() []Node {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]Node, len(g.value))
	for i := range out {
		out[i] = Node(i)
	}
	return out
}
