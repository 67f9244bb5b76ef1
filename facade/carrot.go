package facade

import (
	"math"

	"github.com/gowavefront/estar/grid"
)

// CarrotStep is one entry of a carrot trace: the world-space position
// the carrot occupied, the (unscaled) gradient sampled there, the
// navigation function value at that cell, and whether the step that
// produced it fell back to the heuristic estimator.
type CarrotStep struct {
	X, Y         float64
	GradX, GradY float64
	Value        float64
	Heuristic    bool
}

// TraceResult is TraceCarrot's return code family.
type TraceResult int

const (
	// TraceReached means the sampled value dropped to stepsize or
	// below, or the requested distance was covered.
	TraceReached TraceResult = 0
	// TraceMaxSteps means maxSteps were exhausted before reaching the
	// goal or travelling the requested distance.
	TraceMaxSteps TraceResult = 1
	// TraceStartOutOfGrid means the starting (x, y) has no cell.
	TraceStartOutOfGrid TraceResult = -1
	// TraceStartGradientFailed means the gradient computation failed
	// at the starting cell.
	TraceStartGradientFailed TraceResult = -2
	// TraceSteppedOutOfGrid means a step moved off the allocated grid.
	TraceSteppedOutOfGrid TraceResult = -3
	// TraceFinalGradientFailed means the gradient computation failed
	// while recording the final trace point.
	TraceFinalGradientFailed TraceResult = -4
)

// TraceCarrot iteratively steps a carrot against the scaled gradient
// from world coordinates (x, y), stopping once the carrot lies at
// least distance world-units (straight-line) from (x, y) or the
// sampled value drops at or below
// stepsize, whichever comes first, or after maxSteps iterations.
// Ported from Facade.cpp's TraceCarrot: world coordinates are
// converted to grid indices by dividing by Scale, and the per-step
// gradient/heuristic-step pair comes from
// grid.Grid.ComputeStableScaledGradient.
func (f *Facade) TraceCarrot(x, y, distance, stepsize float64, maxSteps int) (trace []CarrotStep, result TraceResult) {
	scale := f.scale
	rx, ry := x/scale, y/scale
	dist := distance / scale
	unscaledStep := stepsize
	step := stepsize / scale

	ix := int(math.Round(rx))
	iy := int(math.Round(ry))
	if _, ok := f.grid.GetNode(ix, iy); !ok {
		return nil, TraceStartOutOfGrid
	}

	cx, cy := rx, ry
	var steps int
	for steps = 0; steps < maxSteps; steps++ {
		node, _ := f.grid.GetNode(ix, iy)
		value := f.grid.Graph().Value(node)
		gx, gy, dx, dy, gstatus, found := f.grid.ComputeStableScaledGradient(ix, iy, step)
		if !found {
			return trace, TraceStartGradientFailed
		}
		trace = append(trace, CarrotStep{
			X: cx * scale, Y: cy * scale,
			GradX: gx / scale, GradY: gy / scale,
			Value: value, Heuristic: gstatus == grid.GradientHeuristic,
		})

		cx -= dx
		cy -= dy

		if math.Hypot(rx-cx, ry-cy) >= dist {
			break
		}
		if value <= unscaledStep {
			break
		}

		nix, niy := int(math.Round(cx)), int(math.Round(cy))
		if nix != ix || niy != iy {
			ix, iy = nix, niy
			if _, ok := f.grid.GetNode(ix, iy); !ok {
				return trace, TraceSteppedOutOfGrid
			}
		}
	}

	node, _ := f.grid.GetNode(ix, iy)
	value := f.grid.Graph().Value(node)
	gx, gy, _, _, gstatus, found := f.grid.ComputeStableScaledGradient(ix, iy, step)
	if !found {
		return trace, TraceFinalGradientFailed
	}
	trace = append(trace, CarrotStep{
		X: cx * scale, Y: cy * scale,
		GradX: gx / scale, GradY: gy / scale,
		Value: value, Heuristic: gstatus == grid.GradientHeuristic,
	})

	if steps >= maxSteps {
		return trace, TraceMaxSteps
	}
	return trace, TraceReached
}
