package grid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/numeric"
)

const hexYScale = 0.8660254037844386 // sqrt(3)/2

// PosTransform maps a grid index to its world-space rendering
// position: identity for 4/8-connected grids, and the sqrt(3)/2
// y-shear with a half-cell odd-row x-offset for hex grids.
func (g *Grid) PosTransform(ix, iy int) r2.Vec {
	if g.connectivity != SixConnected {
		return r2.Vec{X: float64(ix), Y: float64(iy)}
	}
	x := float64(ix) + 1.0
	if iy%2 == 0 {
		x = float64(ix) + 0.5
	}
	return r2.Vec{X: x, Y: hexYScale*float64(iy) + 0.5}
}

// ComputeBBox returns the logical world-coordinate bounding box of the
// currently allocated region, applying the hex postransform's shear
// for SixConnected grids.
func (g *Grid) ComputeBBox() r2.Box {
	xb, xe := float64(g.XBegin()), float64(g.XEnd())
	yb, ye := float64(g.YBegin()), float64(g.YEnd())
	if g.connectivity != SixConnected {
		return r2.NewBox(xb-0.5, yb-0.5, xe-0.5, ye-0.5)
	}
	return r2.NewBox(xb, yb, xe+0.5, hexYScale*(ye-1)+1)
}

// computeGradient estimates (dvalue/dx, dvalue/dy) at node from its
// axis-aligned neighbors, per Grid.cpp's ComputeGradient: on each
// axis it averages the one-sided differences toward neighbors whose
// value is lower than node's. ok is false unless both axes had at
// least one such neighbor.
func (g *Grid) computeGradient(node cspace.Node) (gradx, grady float64, ok bool) {
	graph := g.Graph()
	base := graph.Value(node)
	x0, y0, _ := graph.Coord(node)

	var countX, countY int
	for _, nbor := range graph.Neighbors(node) {
		nx, ny, nok := graph.Coord(nbor)
		if !nok {
			continue
		}
		switch {
		case nx == x0 && ny != y0:
			if y0 > ny {
				if d := base - graph.Value(nbor); d > 0 {
					grady += d
					countY++
				}
			} else {
				if d := graph.Value(nbor) - base; d < 0 {
					grady += d
					countY++
				}
			}
		case ny == y0 && nx != x0:
			if x0 > nx {
				if d := base - graph.Value(nbor); d > 0 {
					gradx += d
					countX++
				}
			} else {
				if d := graph.Value(nbor) - base; d < 0 {
					gradx += d
					countX++
				}
			}
		}
	}

	if countX > 1 {
		gradx /= float64(countX)
	}
	if countY > 1 {
		grady /= float64(countY)
	}
	return gradx, grady, countX != 0 && countY != 0
}

// ComputeGradient estimates the navigation function's gradient at
// (ix, iy). found is false if no cell exists there. Hex grids always
// report GradientIncomplete: the axis-aligned
// centered-difference method is undefined on a sheared topology.
func (g *Grid) ComputeGradient(ix, iy int) (gradx, grady float64, status GradientStatus, found bool) {
	node, found := g.GetNode(ix, iy)
	if !found {
		return 0, 0, GradientIncomplete, false
	}
	if g.connectivity == SixConnected {
		return 0, 0, GradientIncomplete, true
	}
	gradx, grady, ok := g.computeGradient(node)
	if ok {
		return gradx, grady, GradientOK, true
	}
	return gradx, grady, GradientIncomplete, true
}

// ComputeStableScaledGradient returns a step (dx, dy) of approximate
// norm stepsize along the navigation function's gradient at
// (ix, iy), falling back to a fixed-size heuristic step along each
// axis' gradient sign when the true gradient is too small (or
// unavailable) to normalize safely. (gx, gy) is the raw gradient
// computed along the way, always valid; (dx, dy) is always valid.
func (g *Grid) ComputeStableScaledGradient(ix, iy int, stepsize float64) (gx, gy, dx, dy float64, status GradientStatus, found bool) {
	node, found := g.GetNode(ix, iy)
	if !found {
		return 0, 0, 0, 0, GradientIncomplete, false
	}

	var ok bool
	if g.connectivity != SixConnected {
		gx, gy, ok = g.computeGradient(node)
	}

	heuristic := false
	if ok {
		mag := math.Sqrt(gx*gx + gy*gy)
		if mag < numeric.Epsilon {
			heuristic = true
		} else {
			alpha := stepsize / mag
			dx = gx * alpha
			dy = gy * alpha
		}
	}

	if heuristic || !ok {
		switch {
		case gx > 0:
			dx = stepsize / 2
		case gx < 0:
			dx = -stepsize / 2
		}
		switch {
		case gy > 0:
			dy = stepsize / 2
		case gy < 0:
			dy = -stepsize / 2
		}
	}

	switch {
	case !ok:
		status = GradientIncomplete
	case heuristic:
		status = GradientHeuristic
	default:
		status = GradientOK
	}
	return gx, gy, dx, dy, status, true
}
