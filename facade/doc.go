// Package facade bundles a grid.Grid, an algorithm.Algorithm and a
// kernel.Kernel behind the single coordinate-addressed surface a client
// actually wants to drive: "add a goal at (ix,iy)", "what's the status
// of this cell", "trace a path from this world point".
//
// Ported from Facade.hpp/.cpp: the constructor picks a kernel by
// name, every Algorithm/Grid mutator gets an (ix,iy)-addressed
// wrapper that reports false instead of panicking on an out-of-range
// index, and GetStatus/TraceCarrot/the ASCII dumps port Facade.cpp's
// logic directly (see status.go, carrot.go, dump.go).
package facade
