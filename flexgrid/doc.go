// Package flexgrid provides a growable-in-any-direction 2-D container
// keyed by signed indices, so that the probabilistic risk layer and
// dynamic robot planners can expand the navigation grid around a
// moving origin without ever shifting existing cell coordinates.
//
// What:
//
//   - SDeque[T]: a 1-D deque addressed by a signed index range
//     [IBegin,IEnd), growable at either end.
//   - Flexgrid[T]: a 2-D grid of SDeque rows, independently growable
//     in x and y.
//
// Why: grid.Grid needs a node table that can grow in any of the four
// directions without ever
// invalidating a previously handed-out (ix,iy) coordinate. A plain
// slice-of-slices re-indexed from zero would force every caller to
// track an origin offset by hand; SDeque carries that offset itself.
//
// Ported from sdeque.hpp and flexgrid.hpp's ibegin/iend-addressed
// deque-of-deques design, translated to Go generics: growth that
// needs distinct per-slot instances (new rows) is expressed with a
// factory function rather than copying a single prototype value,
// since Go has no implicit copy-on-append semantics for
// reference-typed elements.
package flexgrid
