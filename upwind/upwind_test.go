package upwind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/upwind"
)

func TestAddHasRemoveEdge(t *testing.T) {
	r := upwind.New()
	u, v := cspace.Node(1), cspace.Node(2)
	assert.False(t, r.HasEdge(u, v))
	r.AddEdge(u, v)
	assert.True(t, r.HasEdge(u, v))
	r.RemoveEdge(u, v)
	assert.False(t, r.HasEdge(u, v))
}

func TestAddEdgeBreaksTwoCycle(t *testing.T) {
	r := upwind.New()
	u, v := cspace.Node(1), cspace.Node(2)
	r.AddEdge(v, u)
	assert.True(t, r.HasEdge(v, u))

	r.AddEdge(u, v)
	assert.True(t, r.HasEdge(u, v))
	assert.False(t, r.HasEdge(v, u), "adding u->v must remove the reverse v->u edge")
}

func TestDownwindOf(t *testing.T) {
	r := upwind.New()
	u := cspace.Node(1)
	r.AddEdge(u, cspace.Node(2))
	r.AddEdge(u, cspace.Node(3))
	down := r.DownwindOf(u)
	assert.ElementsMatch(t, []cspace.Node{2, 3}, down)
}

func TestRemoveIncoming(t *testing.T) {
	r := upwind.New()
	v := cspace.Node(9)
	r.AddEdge(cspace.Node(1), v)
	r.AddEdge(cspace.Node(2), v)
	r.RemoveIncoming(v)
	assert.False(t, r.HasEdge(cspace.Node(1), v))
	assert.False(t, r.HasEdge(cspace.Node(2), v))
	assert.Empty(t, r.DownwindOf(cspace.Node(1)))
}

func TestDownwindOfSnapshotIsIndependent(t *testing.T) {
	r := upwind.New()
	u := cspace.Node(1)
	r.AddEdge(u, cspace.Node(2))
	snap := r.DownwindOf(u)
	r.AddEdge(u, cspace.Node(3))
	assert.Len(t, snap, 1, "snapshot must not observe later mutations")
}
