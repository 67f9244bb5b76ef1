package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowavefront/estar/algorithm"
	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/kernel"
	"github.com/gowavefront/estar/numeric"
)

func buildLine(t *testing.T) (*cspace.Graph, cspace.Node, cspace.Node, cspace.Node) {
	t.Helper()
	g := cspace.NewGraph()
	a := g.AddVertex(1)
	b := g.AddVertex(1)
	c := g.AddVertex(1)
	require.NoError(t, g.AddNeighbor(a, b))
	require.NoError(t, g.AddNeighbor(b, c))
	return g, a, b, c
}

func runToQuiescence(t *testing.T, alg *algorithm.Algorithm) {
	t.Helper()
	for steps := 0; alg.HaveWork(); steps++ {
		require.Less(t, steps, 1000, "did not reach quiescence")
		alg.ComputeOne()
	}
}

func TestComputeOneLowerWaveLineGraph(t *testing.T) {
	g, a, b, c := buildLine(t)
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	runToQuiescence(t, alg)

	assert.Equal(t, 0.0, g.Value(a))
	assert.Equal(t, 1.0, g.Value(b))
	assert.Equal(t, 2.0, g.Value(c))
}

func TestAddGoalIdenticalIsNoOp(t *testing.T) {
	g, a, _, _ := buildLine(t)
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	runToQuiescence(t, alg)
	valueBefore := g.Value(a)
	flagBefore := g.GetFlag(a)

	alg.AddGoal(a, 0)
	assert.False(t, alg.HaveWork())
	assert.Equal(t, valueBefore, g.Value(a))
	assert.Equal(t, flagBefore, g.GetFlag(a))
}

func TestRemoveGoalTriggersReset(t *testing.T) {
	g, a, b, c := buildLine(t)
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	runToQuiescence(t, alg)
	require.Equal(t, 2.0, g.Value(c))

	alg.RemoveGoal(a)
	assert.True(t, alg.HaveWork())
	runToQuiescence(t, alg)

	assert.Equal(t, numeric.Infinity, g.Value(a))
	assert.Equal(t, numeric.Infinity, g.Value(b))
	assert.Equal(t, numeric.Infinity, g.Value(c))
	assert.False(t, alg.HaveWork())
}

func TestRemoveGoalPreservesRemainingGoal(t *testing.T) {
	g := cspace.NewGraph()
	a := g.AddVertex(1)
	b := g.AddVertex(1)
	c := g.AddVertex(1)
	require.NoError(t, g.AddNeighbor(a, b))
	require.NoError(t, g.AddNeighbor(b, c))

	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	alg.AddGoal(c, 0)
	runToQuiescence(t, alg)
	require.Equal(t, 1.0, g.Value(b))

	alg.RemoveGoal(a)
	runToQuiescence(t, alg)

	assert.Equal(t, 0.0, g.Value(c))
	assert.Equal(t, 1.0, g.Value(b))
	assert.Equal(t, 2.0, g.Value(a))
}

func TestSetMetaRepropagates(t *testing.T) {
	g, a, b, c := buildLine(t)
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	runToQuiescence(t, alg)
	require.Equal(t, 2.0, g.Value(c))

	alg.SetMeta(c, 5)
	assert.True(t, alg.HaveWork())
	runToQuiescence(t, alg)

	assert.Equal(t, 6.0, g.Value(c))
	assert.Equal(t, 1.0, g.Value(b))
}

func TestSetMetaNoChangeIsNoOp(t *testing.T) {
	g, a, _, c := buildLine(t)
	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	runToQuiescence(t, alg)

	alg.SetMeta(c, g.Meta(c))
	assert.False(t, alg.HaveWork())
}

func TestInitAllMetaDoesNotQueue(t *testing.T) {
	g := cspace.NewGraph()
	a := g.AddVertex(1)
	b := g.AddVertex(1)
	require.NoError(t, g.AddNeighbor(a, b))

	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.InitAllMeta(3)
	assert.False(t, alg.HaveWork())
	assert.Equal(t, 3.0, g.Meta(a))
	assert.Equal(t, 3.0, g.Meta(b))
}

func TestObstacleBlocksPropagation(t *testing.T) {
	g := cspace.NewGraph()
	a := g.AddVertex(0)
	obstacle := g.AddVertex(numeric.Infinity)
	c := g.AddVertex(0)
	require.NoError(t, g.AddNeighbor(a, obstacle))
	require.NoError(t, g.AddNeighbor(obstacle, c))

	k, err := kernel.NewNF1(1)
	require.NoError(t, err)
	alg := algorithm.New(g, k, 0)

	alg.AddGoal(a, 0)
	runToQuiescence(t, alg)

	assert.Equal(t, numeric.Infinity, g.Value(obstacle))
	assert.Equal(t, numeric.Infinity, g.Value(c))
}
