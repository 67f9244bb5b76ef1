package cspace

import "errors"

// Sentinel errors for cspace operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex id.
	ErrVertexNotFound = errors.New("cspace: vertex not found")

	// ErrSelfLoop indicates AddNeighbor was called with u == v.
	ErrSelfLoop = errors.New("cspace: self-loops are not supported")
)
