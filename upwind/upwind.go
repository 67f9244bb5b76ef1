package upwind

import "github.com/gowavefront/estar/cspace"

// Registry is the directed upwind-edge overlay. forward[u] is the set
// of v with an edge u->v (i.e. u is
// upwind of v); reverse[v] is the set of u with an edge u->v, kept in
// lockstep so RemoveIncoming doesn't need to scan every forward set.
type Registry struct {
	forward map[cspace.Node]map[cspace.Node]struct{}
	reverse map[cspace.Node]map[cspace.Node]struct{}
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		forward: make(map[cspace.Node]map[cspace.Node]struct{}),
		reverse: make(map[cspace.Node]map[cspace.Node]struct{}),
	}
}

// HasEdge reports whether u -> v is currently recorded.
func (r *Registry) HasEdge(u, v cspace.Node) bool {
	set, ok := r.forward[u]
	if !ok {
		return false
	}
	_, ok = set[v]
	return ok
}

// AddEdge records u -> v, first removing v -> u if present to prevent
// the two-cycle that would otherwise make raise propagation recurse
// forever.
func (r *Registry) AddEdge(u, v cspace.Node) {
	if r.HasEdge(v, u) {
		r.removeEdge(v, u)
	}
	if r.forward[u] == nil {
		r.forward[u] = make(map[cspace.Node]struct{})
	}
	r.forward[u][v] = struct{}{}
	if r.reverse[v] == nil {
		r.reverse[v] = make(map[cspace.Node]struct{})
	}
	r.reverse[v][u] = struct{}{}
}

// RemoveEdge drops u -> v if present; a no-op otherwise.
func (r *Registry) RemoveEdge(u, v cspace.Node) {
	r.removeEdge(u, v)
}

func (r *Registry) removeEdge(u, v cspace.Node) {
	if set, ok := r.forward[u]; ok {
		delete(set, v)
		if len(set) == 0 {
			delete(r.forward, u)
		}
	}
	if set, ok := r.reverse[v]; ok {
		delete(set, u)
		if len(set) == 0 {
			delete(r.reverse, v)
		}
	}
}

// RemoveIncoming drops every edge u -> v for all u, i.e. clears v's
// incoming upwind edges. algorithm.Update calls this before installing
// the fresh backpointer set a kernel produced.
func (r *Registry) RemoveIncoming(v cspace.Node) {
	for u := range r.reverse[v] {
		if set, ok := r.forward[u]; ok {
			delete(set, v)
			if len(set) == 0 {
				delete(r.forward, u)
			}
		}
	}
	delete(r.reverse, v)
}

// DownwindOf returns the set of nodes whose rhs was computed using u's
// value, i.e. every v with an edge u -> v. The returned slice is a
// fresh copy safe to iterate while the registry mutates during the
// raise-wave step.
func (r *Registry) DownwindOf(u cspace.Node) []cspace.Node {
	set := r.forward[u]
	out := make([]cspace.Node, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}
