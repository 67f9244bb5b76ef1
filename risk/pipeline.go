package risk

import (
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gowavefront/estar/facade"
	"github.com/gowavefront/estar/grid"
)

// MovingObject is one participant in the co-occurrence estimate: a
// footprint Region and the speed at which it moves.
type MovingObject struct {
	Footprint *Region
	Speed     float64
}

// Config parameterizes a Pipeline run. Width/Height/Connectivity/Scale
// describe the shared grid geometry every Facade in the pipeline is
// built over.
type Config struct {
	Width, Height int
	Connectivity  grid.Connectivity
	Scale         float64

	StaticObstacles [][2]int
	Objects         []MovingObject
	Robot           *Region
	RobotSpeed      float64

	Buffer     *BufferZone
	CoocDelta  float64
	RiskMap    RiskMap
	NavGoals   [][2]int // where the final PNF's wavefront is seeded from
}

// Pipeline runs this probabilistic risk layer: distance
// fields for the environment, each moving object and the robot; a
// co-occurrence field per object; a combined static+dynamic risk
// field; a robot-footprint max-convolution into workspace risk; and a
// final probabilistic navigation function (PNF) Facade propagated
// from a risk-derived meta map.
type Pipeline struct {
	cfg Config

	envDist   *mat.Dense
	objDist   []*mat.Dense
	robotDist *mat.Dense
	risk      *mat.Dense
	cspaceRisk *mat.Dense

	pnf *facade.Facade
}

// NewPipeline builds and runs every stage of cfg's risk fusion,
// returning a Pipeline whose PNF Facade is ready to be driven to
// quiescence via HaveWork/ComputeOne.
func NewPipeline(cfg Config) (*Pipeline, error) {
	p := &Pipeline{cfg: cfg}

	envFacade, err := distanceFacade(cfg, cfg.StaticObstacles, nil)
	if err != nil {
		return nil, err
	}
	p.envDist = sampleField(envFacade, cfg.Width, cfg.Height)

	for _, obj := range cfg.Objects {
		inflated := inflate(p.envDist, obj.Footprint.Sprite.Radius)
		objFacade, err := distanceFacade(cfg, obj.Footprint.Area(), inflated)
		if err != nil {
			return nil, err
		}
		p.objDist = append(p.objDist, sampleField(objFacade, cfg.Width, cfg.Height))
	}

	robotInflated := inflate(p.envDist, cfg.Robot.Sprite.Radius)
	robotFacade, err := distanceFacade(cfg, cfg.Robot.Area(), robotInflated)
	if err != nil {
		return nil, err
	}
	p.robotDist = sampleField(robotFacade, cfg.Width, cfg.Height)

	p.risk = p.combinedRisk()
	p.cspaceRisk = convolveMax(p.risk, cfg.Robot.Sprite)

	pnf, err := facade.New("lsm", cfg.Connectivity, cfg.Scale, 0)
	if err != nil {
		return nil, err
	}
	pnf.AddRange(0, cfg.Width, 0, cfg.Height, pnf.GetFreespaceMeta())
	for ix := 0; ix < cfg.Width; ix++ {
		for iy := 0; iy < cfg.Height; iy++ {
			risk := p.cspaceRisk.At(ix, iy)
			pnf.SetMeta(ix, iy, cfg.RiskMap.RiskToMeta(risk))
		}
	}
	for _, gc := range cfg.NavGoals {
		pnf.AddGoal(gc[0], gc[1], 0)
	}
	p.pnf = pnf

	return p, nil
}

// PNF returns the final probabilistic navigation function Facade.
func (p *Pipeline) PNF() *facade.Facade { return p.pnf }

// EnvironmentDistance returns the sampled distance-to-static-obstacle
// field computed during pipeline construction.
func (p *Pipeline) EnvironmentDistance() *mat.Dense { return p.envDist }

// Risk returns the combined (pre-convolution) workspace risk field.
func (p *Pipeline) Risk() *mat.Dense { return p.risk }

// CSpaceRisk returns the robot-footprint-convolved risk field actually
// mapped into the PNF's meta.
func (p *Pipeline) CSpaceRisk() *mat.Dense { return p.cspaceRisk }

// RiskHistogram summarizes the combined risk field: its mean, its
// standard deviation and the nBuckets+1 quantile cutpoints that split
// it into nBuckets equally populated buckets, all computed with
// gonum/stat. It returns no per-bucket counts. Intended for ASCII-dump style
// diagnostics only, not for any runtime decision.
func (p *Pipeline) RiskHistogram(nBuckets int) (mean, stddev float64, cutpoints []float64) {
	r, c := p.risk.Dims()
	samples := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			samples = append(samples, p.risk.At(i, j))
		}
	}
	sort.Float64s(samples)
	mean = stat.Mean(samples, nil)
	stddev = stat.StdDev(samples, nil)
	cutpoints = make([]float64, nBuckets+1)
	for i := 0; i <= nBuckets; i++ {
		cutpoints[i] = stat.Quantile(float64(i)/float64(nBuckets), stat.Empirical, samples, nil)
	}
	return mean, stddev, cutpoints
}

// combinedRisk computes R(x) = 1 − (1−R_static(x)) · Π_i (1−C_i(x)),
// with R_static from the configured
// BufferZone over the environment distance field and C_i from Cooc
// between each object's and the robot's distance fields.
func (p *Pipeline) combinedRisk() *mat.Dense {
	out := mat.NewDense(p.cfg.Width, p.cfg.Height, nil)
	for ix := 0; ix < p.cfg.Width; ix++ {
		for iy := 0; iy < p.cfg.Height; iy++ {
			rStatic := p.cfg.Buffer.DistanceToRisk(p.envDist.At(ix, iy))
			product := 1 - rStatic
			lambdaR := p.robotDist.At(ix, iy)
			for oi, obj := range p.cfg.Objects {
				lambdaI := p.objDist[oi].At(ix, iy)
				c := Cooc(lambdaI, lambdaR, obj.Speed, p.cfg.RobotSpeed, p.cfg.CoocDelta)
				product *= 1 - c
			}
			out.Set(ix, iy, 1-product)
		}
	}
	return out
}

// distanceFacade builds and runs an LSM Facade to quiescence over
// goalCells, with any cell named by obstacles (or whose envDist
// sample is within radius — see inflate) marked obstacle before
// propagation: the goals are the static obstacle cells, and the
// obstacles passed in are typically cells inflated by a participant's
// own radius.
func distanceFacade(cfg Config, goalCells [][2]int, obstacles map[[2]int]bool) (*facade.Facade, error) {
	f, err := facade.New("lsm", cfg.Connectivity, cfg.Scale, 0)
	if err != nil {
		return nil, err
	}
	f.AddRange(0, cfg.Width, 0, cfg.Height, f.GetFreespaceMeta())
	for cell := range obstacles {
		f.SetMeta(cell[0], cell[1], f.GetObstacleMeta())
	}
	for _, c := range goalCells {
		f.AddGoal(c[0], c[1], 0)
	}
	for f.HaveWork() {
		f.ComputeOne()
	}
	return f, nil
}

// sampleField reads every cell's settled value into a dense matrix.
func sampleField(f *facade.Facade, width, height int) *mat.Dense {
	out := mat.NewDense(width, height, nil)
	for ix := 0; ix < width; ix++ {
		for iy := 0; iy < height; iy++ {
			v, ok := f.GetValue(ix, iy)
			if !ok {
				v = 0
			}
			out.Set(ix, iy, v)
		}
	}
	return out
}

// inflate thresholds dist at radius, returning the set of cells that
// should become obstacles for a participant of that footprint radius,
// derived by thresholding the environment distance.
func inflate(dist *mat.Dense, radius float64) map[[2]int]bool {
	r, c := dist.Dims()
	out := make(map[[2]int]bool)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if dist.At(i, j) <= radius {
				out[[2]int{i, j}] = true
			}
		}
	}
	return out
}

// convolveMax convolves field with sprite's disk footprint by taking
// the maximum over the disk at every cell: the workspace risk seen by
// the robot is as high as the riskiest point its body could occupy.
func convolveMax(field *mat.Dense, sprite *Sprite) *mat.Dense {
	r, c := field.Dims()
	out := mat.NewDense(r, c, nil)
	for ix := 0; ix < r; ix++ {
		for iy := 0; iy < c; iy++ {
			best := 0.0
			for _, o := range sprite.Area {
				nx, ny := ix+o.DX, iy+o.DY
				if nx < 0 || nx >= r || ny < 0 || ny >= c {
					continue
				}
				if v := field.At(nx, ny); v > best {
					best = v
				}
			}
			out.Set(ix, iy, best)
		}
	}
	return out
}
