package kernel

import (
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/propagator"
)

// alphaExponent is the fixed coefficient (= 2) multiplying h*meta in
// the Alpha kernel's isotropic fallback term.
const alphaExponent = 2.0

// Alpha is the isotropic, graph-agnostic interpolation kernel.
// Freespace meta is 1, obstacle meta is +Infinity.
type Alpha struct {
	scale float64
}

// NewAlpha returns an Alpha kernel with the given grid scale. scale
// must be > 0.
func NewAlpha(scale float64) (*Alpha, error) {
	if scale <= 0 {
		return nil, ErrNonPositiveScale
	}
	return &Alpha{scale: scale}, nil
}

// FreespaceMeta is 1 for Alpha.
func (k *Alpha) FreespaceMeta() float64 { return 1 }

// ObstacleMeta is +Infinity for Alpha.
func (k *Alpha) ObstacleMeta() float64 { return numeric.Infinity }

// Scale returns the kernel's grid-spacing parameter.
func (k *Alpha) Scale() float64 { return k.scale }

// Compute implements Kernel's Alpha derivation.
func (k *Alpha) Compute(p *propagator.Propagator) float64 {
	m := p.Meta
	if numeric.IsObstacle(m) {
		return numeric.Infinity
	}
	if len(p.Eligible) == 0 {
		return numeric.Infinity
	}

	h := k.scale
	primary := p.Eligible[0]
	v1 := p.Value(primary)
	tMax := v1 + alphaExponent*h*m

	if len(p.Eligible) == 1 {
		p.AddBackpointer(primary)
		return tMax
	}

	secondary := p.Eligible[1]
	v2 := p.Value(secondary)
	tNonFB := v1 + (m*m)*(2*h+v2-v1)/(1+m)

	if tNonFB > tMax {
		p.AddBackpointer(primary)
		return tMax
	}
	p.AddBackpointer(primary)
	p.AddBackpointer(secondary)
	return tNonFB
}
