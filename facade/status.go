package facade

// Status classifies a cell for rendering/inspection clients. It is a
// read-only summary derived from flag, meta and the cell's relation to
// the current queue-key horizon; it is never stored on the node itself.
type Status int

const (
	// OutOfGrid means the requested (ix, iy) has never been allocated.
	OutOfGrid Status = iota
	// Upwind means the cell's value is already below the queue's
	// current key horizon: the wavefront has passed it by.
	Upwind
	// Downwind means the cell's value is at or beyond the queue's
	// current key horizon: the wavefront has not reached it yet.
	Downwind
	// Wavefront means the cell is either on the queue or sits strictly
	// between the upwind and downwind horizons.
	Wavefront
	// Goal means the cell carries the goal flag.
	Goal
	// Obstacle means the cell's meta equals the active kernel's
	// obstacle_meta.
	Obstacle
)

// String renders the status name.
func (s Status) String() string {
	switch s {
	case OutOfGrid:
		return "OUT_OF_GRID"
	case Upwind:
		return "UPWIND"
	case Downwind:
		return "DOWNWIND"
	case Wavefront:
		return "WAVEFRONT"
	case Goal:
		return "GOAL"
	case Obstacle:
		return "OBSTACLE"
	default:
		return "UNKNOWN"
	}
}

// GetStatus classifies the cell at (ix, iy)
// precedence: out-of-grid, then goal, then wavefront (on-queue), then
// obstacle, then position relative to the queue's key horizon.
// Ported from Facade.cpp's GetStatus(vertex_t).
func (f *Facade) GetStatus(ix, iy int) Status {
	node, ok := f.grid.GetNode(ix, iy)
	if !ok {
		return OutOfGrid
	}
	g := f.grid.Graph()
	flag := g.GetFlag(node)
	if flag.IsGoal() {
		return Goal
	}
	if flag.OnQueue() {
		return Wavefront
	}
	if g.Meta(node) == f.kernel.ObstacleMeta() {
		return Obstacle
	}

	minKey, haveMin := f.alg.MinKey()
	if !haveMin {
		return Upwind
	}
	value := g.Value(node)
	if value < minKey {
		return Upwind
	}
	maxKey, _ := f.alg.MaxKey()
	if value >= maxKey {
		return Downwind
	}
	return Wavefront
}
