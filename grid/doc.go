// Package grid layers 2-D indexing, neighborhood topology, and
// gradient/bbox geometry on top of cspace.Graph and algorithm.Algorithm
//. It is the thing a Facade actually drives: clients
// speak in (ix, iy) grid coordinates, never in bare cspace.Node
// handles.
//
// What:
//
//   - Connectivity selects 4-, 6- (hex), or 8-connected neighbor
//     offsets, fixed at construction.
//   - Grid.AddRange/AddNode grow the grid monotonically, registering
//     every new cell and its neighbor links with the driving
//     Algorithm. A new cell starts at value=rhs=+Infinity and is not
//     queued; neither it nor its neighbors are re-derived when it is
//     linked in.
//   - ComputeGradient/ComputeStableScaledGradient estimate the
//     navigation function's gradient for carrot-tracing.
//   - ComputeBBox returns the logical world-coordinate bounding box of
//     the allocated region, including the hex postransform's shear.
//
// Why: Grid.hpp/.cpp keeps exactly this split between a
// flexgrid-backed node table and a cspace graph of stable vertex ids.
// This port folds GridCSpace's postransform/bbox strategy objects
// into a plain switch over Connectivity, since Go has no need for the
// original's shared_ptr<strategy> indirection when there are only two
// cases.
package grid
