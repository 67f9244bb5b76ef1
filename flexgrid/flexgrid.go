package flexgrid

// Flexgrid is a 2-D container addressed by signed (ix, iy) indices,
// growable independently in x and y, modeled on flexgrid.hpp. Create
// one with NewFlexgrid; the zero value has no row storage and is not
// usable.
type Flexgrid[T any] struct {
	rows           *SDeque[*SDeque[T]]
	zero           T
	xbegin, xend   int
	xRangeAssigned bool
}

// NewFlexgrid returns an empty Flexgrid.
func NewFlexgrid[T any]() *Flexgrid[T] {
	return &Flexgrid[T]{rows: NewSDeque[*SDeque[T]]()}
}

// XBegin returns the first valid x index.
func (f *Flexgrid[T]) XBegin() int { return f.xbegin }

// XEnd returns one past the last valid x index.
func (f *Flexgrid[T]) XEnd() int { return f.xend }

// YBegin returns the first valid y index.
func (f *Flexgrid[T]) YBegin() int { return f.rows.IBegin() }

// YEnd returns one past the last valid y index.
func (f *Flexgrid[T]) YEnd() int { return f.rows.IEnd() }

// At returns the element at (ix, iy) and true, or the zero value and
// false if the coordinate is outside the currently allocated region.
func (f *Flexgrid[T]) At(ix, iy int) (T, bool) {
	row, ok := f.rows.At(iy)
	if !ok {
		var zero T
		return zero, false
	}
	return row.At(ix)
}

// Set writes v at (ix, iy), returning false if the coordinate is
// outside the currently allocated region.
func (f *Flexgrid[T]) Set(ix, iy int, v T) bool {
	row, ok := f.rows.At(iy)
	if !ok {
		return false
	}
	return row.Set(ix, v)
}

func (f *Flexgrid[T]) newRow() *SDeque[T] {
	row := NewSDeque[T]()
	row.Resize(f.xbegin, f.xend, f.zero)
	return row
}

// ResizeXBegin moves the start of the x range to xbegin across every
// existing row.
func (f *Flexgrid[T]) ResizeXBegin(xbegin int) {
	f.xbegin = xbegin
	f.xRangeAssigned = true
	for iy := f.rows.IBegin(); iy < f.rows.IEnd(); iy++ {
		row, _ := f.rows.At(iy)
		row.ResizeBegin(xbegin, f.zero)
	}
}

// ResizeXEnd moves the end of the x range to xend across every
// existing row.
func (f *Flexgrid[T]) ResizeXEnd(xend int) {
	f.xend = xend
	f.xRangeAssigned = true
	for iy := f.rows.IBegin(); iy < f.rows.IEnd(); iy++ {
		row, _ := f.rows.At(iy)
		row.ResizeEnd(xend, f.zero)
	}
}

// ResizeX grows or shrinks the x range at both ends.
func (f *Flexgrid[T]) ResizeX(xbegin, xend int) {
	f.ResizeXBegin(xbegin)
	f.ResizeXEnd(xend)
}

// ResizeYBegin moves the start of the y range to ybegin, allocating a
// fresh row (spanning the current x range) for every newly exposed
// low-end slot.
func (f *Flexgrid[T]) ResizeYBegin(ybegin int) {
	f.rows.ResizeBeginFunc(ybegin, f.newRow)
}

// ResizeYEnd moves the end of the y range to yend, allocating a fresh
// row for every newly exposed high-end slot.
func (f *Flexgrid[T]) ResizeYEnd(yend int) {
	f.rows.ResizeEndFunc(yend, f.newRow)
}

// ResizeY grows or shrinks the y range at both ends.
func (f *Flexgrid[T]) ResizeY(ybegin, yend int) {
	f.ResizeYBegin(ybegin)
	f.ResizeYEnd(yend)
}

// Resize grows or shrinks all four bounds at once.
func (f *Flexgrid[T]) Resize(xbegin, xend, ybegin, yend int) {
	f.ResizeXBegin(xbegin)
	f.ResizeXEnd(xend)
	f.ResizeYBegin(ybegin)
	f.ResizeYEnd(yend)
}

// Grow expands the grid, if necessary, so that (ix, iy) is addressable.
// Equivalent to flexgrid.hpp's smart_at, split from the write itself:
// callers follow Grow with Set.
func (f *Flexgrid[T]) Grow(ix, iy int) {
	if ix < f.xbegin {
		f.ResizeXBegin(ix)
	} else if ix >= f.xend {
		f.ResizeXEnd(ix + 1)
	}
	if iy < f.rows.IBegin() {
		f.ResizeYBegin(iy)
	} else if iy >= f.rows.IEnd() {
		f.ResizeYEnd(iy + 1)
	}
}

// SmartSet grows the grid as needed and then writes v at (ix, iy).
func (f *Flexgrid[T]) SmartSet(ix, iy int, v T) {
	f.Grow(ix, iy)
	f.Set(ix, iy, v)
}
