package kernel

import (
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/propagator"
)

// LSM is the Level-Set-Method interpolation kernel for 4-connected
// grids. Freespace meta is 1, obstacle meta is 0.
type LSM struct {
	scale float64
}

// NewLSM returns an LSM kernel with the given grid scale. scale must
// be > 0.
func NewLSM(scale float64) (*LSM, error) {
	if scale <= 0 {
		return nil, ErrNonPositiveScale
	}
	return &LSM{scale: scale}, nil
}

// FreespaceMeta is 1 for LSM.
func (k *LSM) FreespaceMeta() float64 { return 1 }

// ObstacleMeta is 0 for LSM.
func (k *LSM) ObstacleMeta() float64 { return 0 }

// Scale returns the kernel's grid-spacing parameter.
func (k *LSM) Scale() float64 { return k.scale }

// Compute implements Kernel LSM derivation. It
// requires the underlying cspace.Graph to carry 2-D coordinates (set
// via grid.Grid); neighbors without coordinates never pass the
// axis-orthogonality test below and so can only ever be used as the
// primary, single-neighbor fallback.
func (k *LSM) Compute(p *propagator.Propagator) float64 {
	m := p.Meta
	if m <= numeric.Epsilon {
		return numeric.Infinity
	}
	if len(p.Eligible) == 0 {
		return numeric.Infinity
	}

	h := k.scale
	r := h / m

	primary := p.Eligible[0]
	v1 := p.Value(primary)
	p.AddBackpointer(primary)

	tx, ty, tok := p.Coord(p.Target)
	px, py, pok := p.Coord(primary)
	primaryAxis := axisBetween(tx, ty, px, py, tok && pok)

	var (
		secondaryFound bool
		secondaryNode  = primary
	)
	for _, n := range p.Eligible[1:] {
		nx, ny, nok := p.Coord(n)
		axis := axisBetween(tx, ty, nx, ny, tok && nok)
		if axis != axisNone && axis != primaryAxis {
			secondaryNode = n
			secondaryFound = true
			break
		}
	}

	if !secondaryFound {
		return v1 + r
	}
	v2 := p.Value(secondaryNode)
	if r <= v2-v1 {
		return v1 + r
	}

	p.AddBackpointer(secondaryNode)
	b := v1 + v2
	c := (v1*v1 + v2*v2 - r*r) / 2
	roots := numeric.SolveQuadratic(1, -b, c)
	if len(roots) == 0 {
		return v1 + r
	}
	return roots[len(roots)-1]
}

type axis int

const (
	axisNone axis = iota
	axisX
	axisY
)

// axisBetween classifies neighbor (nx,ny) relative to target (tx,ty)
// as lying along the x-axis (same y, differing x) or the y-axis (same
// x, differing y). Diagonal neighbors, or neighbors with no recorded
// coordinate, classify as axisNone and never satisfy the "differs from
// primary" test.
func axisBetween(tx, ty, nx, ny int, ok bool) axis {
	if !ok {
		return axisNone
	}
	switch {
	case nx == tx && ny != ty:
		return axisY
	case ny == ty && nx != tx:
		return axisX
	default:
		return axisNone
	}
}
