package facade

import (
	"fmt"
	"io"
	"math"

	"github.com/gowavefront/estar/numeric"
)

// formatInf renders v as "inf" when it equals numeric.Infinity,
// otherwise with %g, matching dump.cpp's infinity-substitution
// convention throughout its fprintf calls.
func formatInf(v float64) string {
	if v == numeric.Infinity {
		return "inf"
	}
	return fmt.Sprintf("%g", v)
}

// DumpGrid writes an unstable, debugging-only ASCII rendering of every
// allocated cell in row-major (iy descending, ix ascending) order: one
// line per cell holding (meta, value, rhs, flag, vertex-id, (ix,iy)).
// Ported from dump.cpp's line1/line2/line3 cell block layout,
// flattened to one line per cell rather than a fixed-width grid
// table, since this package has no terminal/rendering surface to lay
// out columns against.
func (f *Facade) DumpGrid(w io.Writer) {
	g := f.grid.Graph()
	for iy := f.grid.YEnd() - 1; iy >= f.grid.YBegin(); iy-- {
		for ix := f.grid.XBegin(); ix < f.grid.XEnd(); ix++ {
			node, ok := f.grid.GetNode(ix, iy)
			if !ok {
				continue
			}
			fmt.Fprintf(w, "(%d,%d) id=%d meta=%s value=%s rhs=%s flag=%s\n",
				ix, iy, node,
				formatInf(g.Meta(node)),
				formatInf(g.Value(node)),
				formatInf(g.Rhs(node)),
				g.GetFlag(node))
		}
	}
}

// DumpQueue writes an unstable, debugging-only summary of the
// algorithm's priority queue: one line per outstanding node, in grid
// order (rows from the highest iy down, each row by ascending ix),
// marking every node whose key equals the current minimum with "*" and
// reporting whether it would settle via a lower or raise wave.
// Ported from dump.cpp's dump_queue.
func (f *Facade) DumpQueue(w io.Writer) {
	minKey, ok := f.alg.MinKey()
	if !ok {
		fmt.Fprintln(w, "queue: empty")
		return
	}
	fmt.Fprintln(w, "queue:")
	g := f.grid.Graph()
	for iy := f.grid.YEnd() - 1; iy >= f.grid.YBegin(); iy-- {
		for ix := f.grid.XBegin(); ix < f.grid.XEnd(); ix++ {
			node, ok := f.grid.GetNode(ix, iy)
			if !ok || !g.GetFlag(node).OnQueue() {
				continue
			}
			value, rhs := g.Value(node), g.Rhs(node)
			key := numeric.Min2(value, rhs)
			wave := "raise"
			if rhs < value {
				wave = "lower"
			}
			mark := " "
			if math.Abs(key-minKey) < numeric.Epsilon {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s f: %s %s id: %d (%d,%d) k: %g v: %s rhs: %s\n",
				mark, g.GetFlag(node), wave, node, ix, iy,
				key, formatInf(value), formatInf(rhs))
		}
	}
}
