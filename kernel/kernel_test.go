package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/kernel"
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/propagator"
	"github.com/gowavefront/estar/queue"
	"github.com/gowavefront/estar/upwind"
)

func newSingleUpwind(t *testing.T, targetMeta, neighborValue float64) (*propagator.Propagator, cspace.Node) {
	t.Helper()
	g := cspace.NewGraph()
	target := g.AddVertex(targetMeta)
	n := g.AddVertex(0)
	g.SetValue(n, neighborValue)
	g.SetRhs(n, neighborValue)

	p := propagator.Build(g, upwind.New(), queue.New(), target, []cspace.Node{n})
	require.Len(t, p.Eligible, 1)
	return p, n
}

func TestNF1Compute(t *testing.T) {
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	p, n := newSingleUpwind(t, 2, 3)
	rhs := k.Compute(p)
	assert.Equal(t, 5.0, rhs)
	assert.Equal(t, []cspace.Node{n}, p.Backpointers())
}

func TestNF1NoUpwindNeighbors(t *testing.T) {
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	g := cspace.NewGraph()
	target := g.AddVertex(1)
	p := propagator.Build(g, upwind.New(), queue.New(), target, nil)
	assert.Equal(t, numeric.Infinity, k.Compute(p))
}

func TestAlphaObstacleMeta(t *testing.T) {
	k, err := kernel.NewAlpha(1)
	require.NoError(t, err)
	p, _ := newSingleUpwind(t, numeric.Infinity, 0)
	assert.Equal(t, numeric.Infinity, k.Compute(p))
}

func TestAlphaSingleNeighborFallback(t *testing.T) {
	k, err := kernel.NewAlpha(1)
	require.NoError(t, err)
	p, _ := newSingleUpwind(t, 1, 0)
	// T_max = v1 + alpha*h*m = 0 + 2*1*1 = 2
	assert.Equal(t, 2.0, k.Compute(p))
}

func TestAlphaTwoNeighborsNonFallback(t *testing.T) {
	k, err := kernel.NewAlpha(1)
	require.NoError(t, err)
	g := cspace.NewGraph()
	target := g.AddVertex(1)
	a := g.AddVertex(0)
	b := g.AddVertex(0)
	g.SetValue(a, 0)
	g.SetRhs(a, 0)
	g.SetValue(b, 1)
	g.SetRhs(b, 1)
	p := propagator.Build(g, upwind.New(), queue.New(), target, []cspace.Node{a, b})
	require.Len(t, p.Eligible, 2)

	rhs := k.Compute(p)
	// T_max = 0 + 2*1*1 = 2; T_nonfb = 0 + 1*(2+1-0)/(1+1) = 1.5 <= T_max
	assert.InDelta(t, 1.5, rhs, 1e-9)
	assert.Len(t, p.Backpointers(), 2)
}

func TestLSMObstacleMeta(t *testing.T) {
	k, err := kernel.NewLSM(1)
	require.NoError(t, err)
	p, _ := newSingleUpwind(t, 0, 0)
	assert.Equal(t, numeric.Infinity, k.Compute(p))
}

func TestLSMSingleNeighborFallback(t *testing.T) {
	k, err := kernel.NewLSM(1)
	require.NoError(t, err)
	p, _ := newSingleUpwind(t, 1, 0)
	// r = h/m = 1; no secondary -> v1 + r = 1
	assert.Equal(t, 1.0, k.Compute(p))
}

func TestLSMTwoOrthogonalNeighbors(t *testing.T) {
	k, err := kernel.NewLSM(1)
	require.NoError(t, err)
	g := cspace.NewGraph()
	target := g.AddVertex(1)
	g.SetCoord(target, 1, 1)
	west := g.AddVertex(1)
	g.SetCoord(west, 0, 1)
	south := g.AddVertex(1)
	g.SetCoord(south, 1, 0)
	g.SetValue(west, 0)
	g.SetRhs(west, 0)
	g.SetValue(south, 0)
	g.SetRhs(south, 0)

	p := propagator.Build(g, upwind.New(), queue.New(), target, []cspace.Node{west, south})
	require.Len(t, p.Eligible, 2)
	rhs := k.Compute(p)
	// v1=v2=0, r=1: (T)^2+(T)^2=1 => T = sqrt(0.5)
	assert.InDelta(t, 0.70710678, rhs, 1e-6)
	assert.Len(t, p.Backpointers(), 2)
}
