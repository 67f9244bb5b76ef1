package risk

import "math"

// Offset is one relative grid cell of a Sprite: its (dx, dy) from the
// sprite's placement origin, and its Euclidean distance from center.
type Offset struct {
	DX, DY int
	R      float64
}

// Sprite is a relocatable disk-shaped footprint, used to mark goal or
// obstacle regions at a given world radius. Ported from Sprite.cpp's
// brute-force disk rasterization: every offset within
// [−ceil(radius/scale), ceil(radius/scale)]² whose Euclidean distance
// is <= radius belongs to Area; those within one scale step of the
// boundary also belong to Border.
type Sprite struct {
	Radius, Scale float64
	Area          []Offset
	Border        []Offset
}

// NewSprite rasterizes a disk of the given radius at the given grid
// scale. Both empty Area and empty Border are repaired to a single
// center offset, matching the original's defensive fallback for
// radii smaller than one grid cell.
func NewSprite(radius, scale float64) *Sprite {
	s := &Sprite{Radius: radius, Scale: scale}
	offset := int(math.Ceil(radius / scale))
	for ix := -offset; ix <= offset; ix++ {
		x2 := math.Pow(float64(ix)*scale, 2)
		for iy := -offset; iy <= offset; iy++ {
			rr := math.Sqrt(math.Pow(float64(iy)*scale, 2) + x2)
			if rr <= radius {
				s.Area = append(s.Area, Offset{ix, iy, rr})
				if rr >= radius-scale {
					s.Border = append(s.Border, Offset{ix, iy, rr})
				}
			}
		}
	}
	if len(s.Area) == 0 {
		s.Area = append(s.Area, Offset{0, 0, 0})
	}
	if len(s.Border) == 0 {
		s.Border = append(s.Border, Offset{0, 0, 0})
	}
	return s
}

// Region is a Sprite placed at a specific (ix0, iy0) grid origin.
// Immutable after construction: safe to share across the
// multiple Facades the risk pipeline iterates sequentially.
type Region struct {
	Sprite *Sprite
	IX0    int
	IY0    int
}

// NewRegion places sprite at (ix0, iy0).
func NewRegion(sprite *Sprite, ix0, iy0 int) *Region {
	return &Region{Sprite: sprite, IX0: ix0, IY0: iy0}
}

// Area returns the region's absolute (ix, iy) cells.
func (r *Region) Area() [][2]int {
	out := make([][2]int, len(r.Sprite.Area))
	for i, o := range r.Sprite.Area {
		out[i] = [2]int{r.IX0 + o.DX, r.IY0 + o.DY}
	}
	return out
}
