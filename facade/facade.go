package facade

import (
	"errors"
	"fmt"

	"github.com/gowavefront/estar/algorithm"
	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/grid"
	"github.com/gowavefront/estar/kernel"
)

// ErrUnknownKernel is returned by New when kernelName names none of
// "nf1", "alpha" or "lsm".
var ErrUnknownKernel = errors.New("facade: unknown kernel name")

// Facade is the user-facing bundle: a Grid, the
// Algorithm driving it, and the Kernel chosen at construction, plus the
// scale factor that converts between world coordinates and grid
// indices (used by TraceCarrot).
type Facade struct {
	grid   *grid.Grid
	alg    *algorithm.Algorithm
	kernel kernel.Kernel
	scale  float64
}

// New builds a Facade around a freshly allocated Grid. kernelName
// selects the interpolation kernel ("nf1", "alpha" or "lsm"); scale is
// both the kernel's grid-spacing parameter and the world<->grid-index
// conversion factor TraceCarrot uses. slack is the Algorithm's
// quiescence tolerance; 0 is the exact-consistency default.
func New(kernelName string, connectivity grid.Connectivity, scale, slack float64) (*Facade, error) {
	k, err := buildKernel(kernelName, scale)
	if err != nil {
		return nil, err
	}
	g := cspace.NewGraph()
	alg := algorithm.New(g, k, slack)
	return &Facade{
		grid:   grid.New(alg, connectivity),
		alg:    alg,
		kernel: k,
		scale:  scale,
	}, nil
}

func buildKernel(name string, scale float64) (kernel.Kernel, error) {
	switch name {
	case "nf1":
		return kernel.NewNF1(scale)
	case "alpha":
		return kernel.NewAlpha(scale)
	case "lsm":
		return kernel.NewLSM(scale)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
}

// Grid returns the underlying Grid.
func (f *Facade) Grid() *grid.Grid { return f.grid }

// Algorithm returns the underlying Algorithm.
func (f *Facade) Algorithm() *algorithm.Algorithm { return f.alg }

// Kernel returns the Facade's kernel.
func (f *Facade) Kernel() kernel.Kernel { return f.kernel }

// Scale returns the Facade's world<->grid-index conversion factor.
func (f *Facade) Scale() float64 { return f.scale }

// GetFreespaceMeta returns the kernel's freespace meta value.
func (f *Facade) GetFreespaceMeta() float64 { return f.kernel.FreespaceMeta() }

// GetObstacleMeta returns the kernel's obstacle meta value.
func (f *Facade) GetObstacleMeta() float64 { return f.kernel.ObstacleMeta() }

// GetValue returns the navigation function value at (ix, iy); ok is
// false if no cell exists there.
func (f *Facade) GetValue(ix, iy int) (value float64, ok bool) {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return 0, false
	}
	return f.grid.Graph().Value(node), true
}

// GetMeta returns the terrain cost at (ix, iy); ok is false if no cell
// exists there.
func (f *Facade) GetMeta(ix, iy int) (meta float64, ok bool) {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return 0, false
	}
	return f.grid.Graph().Meta(node), true
}

// SetMeta updates the terrain cost at (ix, iy), re-propagating if it
// changed. Returns false if no cell exists there.
func (f *Facade) SetMeta(ix, iy int, meta float64) bool {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return false
	}
	f.alg.SetMeta(node, meta)
	return true
}

// InitMeta sets the terrain cost at (ix, iy) without triggering
// propagation, intended for use before the first ComputeOne. Returns
// false if no cell exists there.
func (f *Facade) InitMeta(ix, iy int, meta float64) bool {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return false
	}
	f.alg.InitMeta(node, meta)
	return true
}

// AddRange grows the grid so every cell in [xbegin,xend) x
// [ybegin,yend) exists, creating any missing ones with meta. Returns
// the number of newly created cells.
func (f *Facade) AddRange(xbegin, xend, ybegin, yend int, meta float64) int {
	return f.grid.AddRange(xbegin, xend, ybegin, yend, meta)
}

// AddNode ensures a cell exists at (ix, iy), creating it with meta if
// absent or updating its meta in place (re-propagating) otherwise.
// Returns true iff the cell was newly created.
func (f *Facade) AddNode(ix, iy int, meta float64) bool {
	return f.grid.AddNode(ix, iy, meta)
}

// AddGoal marks (ix, iy) as a goal with the given rhs value. Returns
// false if no cell exists there.
func (f *Facade) AddGoal(ix, iy int, value float64) bool {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return false
	}
	f.alg.AddGoal(node, value)
	return true
}

// RemoveGoal clears the goal flag at (ix, iy). Returns false if no
// cell exists there.
func (f *Facade) RemoveGoal(ix, iy int) bool {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return false
	}
	f.alg.RemoveGoal(node)
	return true
}

// RemoveAllGoals clears every goal in the grid.
func (f *Facade) RemoveAllGoals() { f.alg.RemoveAllGoals() }

// IsGoal reports whether (ix, iy) is currently a goal. ok is false if
// no cell exists there.
func (f *Facade) IsGoal(ix, iy int) (isGoal, ok bool) {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return false, false
	}
	return f.grid.Graph().GetFlag(node).IsGoal(), true
}

// HaveWork reports whether the solver has outstanding propagation
// work.
func (f *Facade) HaveWork() bool { return f.alg.HaveWork() }

// ComputeOne advances the solver by one step.
func (f *Facade) ComputeOne() { f.alg.ComputeOne() }

// GetLowestInconsistentValue returns the smallest queue key currently
// outstanding; ok is false if the queue is empty.
func (f *Facade) GetLowestInconsistentValue() (value float64, ok bool) {
	return f.alg.MinKey()
}
