package kernel

import (
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/propagator"
)

// NF1 is the non-interpolating kernel: rhs = value(primary) +
// meta(target), where primary is the upwind neighbor with the
// smallest value. Intended for binary maps (freespace=0,
// obstacle=+Inf)
type NF1 struct {
	scale float64
}

// NewNF1 returns an NF1 kernel with the given grid scale. scale must
// be > 0.
func NewNF1(scale float64) (*NF1, error) {
	if scale <= 0 {
		return nil, ErrNonPositiveScale
	}
	return &NF1{scale: scale}, nil
}

// FreespaceMeta is 0 for NF1.
func (k *NF1) FreespaceMeta() float64 { return 0 }

// ObstacleMeta is +Infinity for NF1.
func (k *NF1) ObstacleMeta() float64 { return numeric.Infinity }

// Scale returns the kernel's grid-spacing parameter.
func (k *NF1) Scale() float64 { return k.scale }

// Compute implements Kernel.
func (k *NF1) Compute(p *propagator.Propagator) float64 {
	if len(p.Eligible) == 0 {
		return numeric.Infinity
	}
	primary := p.Eligible[0]
	p.AddBackpointer(primary)
	return p.Value(primary) + p.Meta
}
