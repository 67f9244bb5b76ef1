package flexgrid

// SDeque is a growable 1-D container addressed by a signed index
// range [IBegin, IEnd), modeled on sdeque.hpp. The zero value is an
// empty deque spanning [0, 0).
type SDeque[T any] struct {
	ibegin, iend int
	items        []T
}

// NewSDeque returns an empty SDeque.
func NewSDeque[T any]() *SDeque[T] {
	return &SDeque[T]{}
}

// IBegin returns the first valid index.
func (d *SDeque[T]) IBegin() int { return d.ibegin }

// IEnd returns one past the last valid index.
func (d *SDeque[T]) IEnd() int { return d.iend }

// Len returns the number of addressable slots.
func (d *SDeque[T]) Len() int { return d.iend - d.ibegin }

// At returns the element at index i and true, or the zero value and
// false if i is outside [IBegin, IEnd).
func (d *SDeque[T]) At(i int) (T, bool) {
	if i < d.ibegin || i >= d.iend {
		var zero T
		return zero, false
	}
	return d.items[i-d.ibegin], true
}

// Set writes v at index i, returning false if i is outside
// [IBegin, IEnd).
func (d *SDeque[T]) Set(i int, v T) bool {
	if i < d.ibegin || i >= d.iend {
		return false
	}
	d.items[i-d.ibegin] = v
	return true
}

// ResizeBeginFunc moves the start of the addressable range to ibegin,
// filling any newly exposed low-end slots with factory() (called once
// per new slot, so reference-typed elements don't alias). Panics if
// ibegin is past the current end, mirroring sdeque.hpp's
// out_of_range.
func (d *SDeque[T]) ResizeBeginFunc(ibegin int, factory func() T) {
	if ibegin > d.iend {
		panic("flexgrid: SDeque.ResizeBegin range error")
	}
	delta := d.ibegin - ibegin
	switch {
	case delta > 0:
		prefix := make([]T, delta)
		for i := range prefix {
			prefix[i] = factory()
		}
		d.items = append(prefix, d.items...)
	case delta < 0:
		d.items = d.items[-delta:]
	}
	d.ibegin = ibegin
}

// ResizeBegin is ResizeBeginFunc with every new slot set to the same
// zero value.
func (d *SDeque[T]) ResizeBegin(ibegin int, zero T) {
	d.ResizeBeginFunc(ibegin, func() T { return zero })
}

// ResizeEndFunc moves the end of the addressable range to iend,
// filling any newly exposed high-end slots with factory(). Panics if
// iend is before the current start.
func (d *SDeque[T]) ResizeEndFunc(iend int, factory func() T) {
	if iend < d.ibegin {
		panic("flexgrid: SDeque.ResizeEnd range error")
	}
	d.iend = iend
	newLen := iend - d.ibegin
	switch {
	case newLen > len(d.items):
		extra := make([]T, newLen-len(d.items))
		for i := range extra {
			extra[i] = factory()
		}
		d.items = append(d.items, extra...)
	case newLen < len(d.items):
		d.items = d.items[:newLen]
	}
}

// ResizeEnd is ResizeEndFunc with every new slot set to the same zero
// value.
func (d *SDeque[T]) ResizeEnd(iend int, zero T) {
	d.ResizeEndFunc(iend, func() T { return zero })
}

// Resize grows or shrinks both ends at once, as Resize(ibegin, iend,
// zero) in sdeque.hpp does.
func (d *SDeque[T]) Resize(ibegin, iend int, zero T) {
	d.ResizeBegin(ibegin, zero)
	d.ResizeEnd(iend, zero)
}

// ResizeFunc is Resize with a per-slot factory instead of a shared
// zero value.
func (d *SDeque[T]) ResizeFunc(ibegin, iend int, factory func() T) {
	d.ResizeBeginFunc(ibegin, factory)
	d.ResizeEndFunc(iend, factory)
}
