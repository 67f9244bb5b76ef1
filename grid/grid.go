package grid

import (
	"github.com/gowavefront/estar/algorithm"
	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/flexgrid"
)

type cellSlot struct {
	node cspace.Node
	ok   bool
}

// Grid wraps an algorithm.Algorithm with 2-D (ix, iy) indexing and a
// fixed neighborhood topology.
type Grid struct {
	alg          *algorithm.Algorithm
	connectivity Connectivity
	offsets      []offset
	cells        *flexgrid.Flexgrid[cellSlot]
}

// New returns an empty Grid driving alg, connected per connectivity.
func New(alg *algorithm.Algorithm, connectivity Connectivity) *Grid {
	return &Grid{
		alg:          alg,
		connectivity: connectivity,
		offsets:      offsetsFor(connectivity),
		cells:        flexgrid.NewFlexgrid[cellSlot](),
	}
}

// Connectivity returns the grid's fixed neighborhood topology.
func (g *Grid) Connectivity() Connectivity { return g.connectivity }

// Graph returns the underlying cspace.Graph.
func (g *Grid) Graph() *cspace.Graph { return g.alg.Graph() }

// Algorithm returns the driving solver.
func (g *Grid) Algorithm() *algorithm.Algorithm { return g.alg }

// XBegin returns the first allocated x index.
func (g *Grid) XBegin() int { return g.cells.XBegin() }

// XEnd returns one past the last allocated x index.
func (g *Grid) XEnd() int { return g.cells.XEnd() }

// YBegin returns the first allocated y index.
func (g *Grid) YBegin() int { return g.cells.YBegin() }

// YEnd returns one past the last allocated y index.
func (g *Grid) YEnd() int { return g.cells.YEnd() }

// GetNode looks up the node at (ix, iy); ok is false if the cell has
// never been added.
func (g *Grid) GetNode(ix, iy int) (node cspace.Node, ok bool) {
	cell, present := g.cells.At(ix, iy)
	if !present || !cell.ok {
		return 0, false
	}
	return cell.node, true
}

// doAddNode allocates a new cspace node at (ix, iy), records its
// coordinate, hooks it up to any already-present neighbor cells, and
// registers it with the flexgrid node table.
func (g *Grid) doAddNode(ix, iy int, meta float64) cspace.Node {
	node := g.alg.AddVertex(meta)
	g.Graph().SetCoord(node, ix, iy)
	g.cells.SmartSet(ix, iy, cellSlot{node: node, ok: true})

	for _, o := range g.offsets {
		nx, ny := ix+o.dx, iy+o.dy
		if nbor, present := g.cells.At(nx, ny); present && nbor.ok {
			_ = g.alg.AddNeighbor(node, nbor.node)
		}
	}
	return node
}

// AddRange grows the grid, if necessary, so every cell in
// [xbegin,xend) x [ybegin,yend) exists, creating any missing cells
// with the given meta and registering them with the Algorithm. It
// never removes or re-metas an already-present cell. Returns the
// number of newly created cells.
func (g *Grid) AddRange(xbegin, xend, ybegin, yend int, meta float64) int {
	count := 0
	for ix := xbegin; ix < xend; ix++ {
		for iy := ybegin; iy < yend; iy++ {
			if cell, present := g.cells.At(ix, iy); present && cell.ok {
				continue
			}
			g.doAddNode(ix, iy, meta)
			count++
		}
	}
	return count
}

// AddNode ensures a cell exists at (ix, iy). If it already does, its
// meta is updated in place via the Algorithm (re-propagating if
// changed) and AddNode returns false. Otherwise a new cell is created
// and AddNode returns true.
func (g *Grid) AddNode(ix, iy int, meta float64) bool {
	if cell, present := g.cells.At(ix, iy); present && cell.ok {
		g.alg.SetMeta(cell.node, meta)
		return false
	}
	g.doAddNode(ix, iy, meta)
	return true
}
