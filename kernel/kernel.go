package kernel

import (
	"errors"

	"github.com/gowavefront/estar/propagator"
)

// ErrNonPositiveScale is returned by every kernel constructor when
// scale <= 0. The legacy estar source this solver is patterned after
// has compile-time variants that assume a non-zero scale and silently
// produce NaNs otherwise; here that assumption becomes an explicit,
// rejected precondition.
var ErrNonPositiveScale = errors.New("kernel: scale must be > 0")

// Kernel computes a target node's rhs from its eligible upwind
// neighbors, and publishes the meta conventions every caller relies on.
type Kernel interface {
	// Compute returns the new rhs for p.Target, and records every
	// upwind neighbor it actually used via p.AddBackpointer.
	Compute(p *propagator.Propagator) float64

	// FreespaceMeta is the meta value this kernel treats as
	// unobstructed, cost-free terrain.
	FreespaceMeta() float64
	// ObstacleMeta is the meta value this kernel treats as impassable.
	ObstacleMeta() float64
	// Scale is the kernel's grid-spacing parameter (h).
	Scale() float64
}
