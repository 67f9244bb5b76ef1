package cspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gowavefront/estar/cspace"
)

func TestMakeFlagCombinations(t *testing.T) {
	cases := []struct {
		onQueue, isGoal bool
		want            string
	}{
		{false, false, "NONE"},
		{true, false, "OPEN"},
		{false, true, "GOAL"},
		{true, true, "OPEN-GOAL"},
	}
	for _, c := range cases {
		f := cspace.MakeFlag(c.onQueue, c.isGoal)
		assert.Equal(t, c.want, f.String())
		assert.Equal(t, c.onQueue, f.OnQueue())
		assert.Equal(t, c.isGoal, f.IsGoal())
	}
}

func TestFlagWithers(t *testing.T) {
	f := cspace.FlagNone
	f = f.WithGoal(true)
	assert.True(t, f.IsGoal())
	f = f.WithOnQueue(true)
	assert.True(t, f.OnQueue())
	f = f.WithGoal(false)
	assert.False(t, f.IsGoal())
	assert.True(t, f.OnQueue())
}
