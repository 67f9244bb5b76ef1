package flexgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gowavefront/estar/flexgrid"
)

func TestSDequeZeroValueIsEmpty(t *testing.T) {
	d := flexgrid.NewSDeque[int]()
	assert.Equal(t, 0, d.Len())
	_, ok := d.At(0)
	assert.False(t, ok)
}

func TestSDequeResizeEndGrowsForward(t *testing.T) {
	d := flexgrid.NewSDeque[int]()
	d.ResizeEnd(3, -1)
	require.Equal(t, 3, d.Len())
	for i := 0; i < 3; i++ {
		v, ok := d.At(i)
		require.True(t, ok)
		assert.Equal(t, -1, v)
	}
	ok := d.Set(1, 42)
	require.True(t, ok)
	v, _ := d.At(1)
	assert.Equal(t, 42, v)
}

func TestSDequeResizeBeginGrowsNegative(t *testing.T) {
	d := flexgrid.NewSDeque[int]()
	d.ResizeEnd(2, 0)
	d.Set(0, 10)
	d.Set(1, 11)

	d.ResizeBegin(-2, -1)
	assert.Equal(t, -2, d.IBegin())
	assert.Equal(t, 2, d.IEnd())
	assert.Equal(t, 4, d.Len())

	v, ok := d.At(-2)
	require.True(t, ok)
	assert.Equal(t, -1, v)
	v, ok = d.At(0)
	require.True(t, ok)
	assert.Equal(t, 10, v)
	v, ok = d.At(1)
	require.True(t, ok)
	assert.Equal(t, 11, v)
}

func TestSDequeShrinkBeginAndEnd(t *testing.T) {
	d := flexgrid.NewSDeque[int]()
	d.Resize(-2, 3, 0)
	for i := d.IBegin(); i < d.IEnd(); i++ {
		d.Set(i, i)
	}

	d.ResizeBegin(0, 0)
	d.ResizeEnd(2, 0)

	assert.Equal(t, 0, d.IBegin())
	assert.Equal(t, 2, d.IEnd())
	v, _ := d.At(0)
	assert.Equal(t, 0, v)
	v, _ = d.At(1)
	assert.Equal(t, 1, v)
	_, ok := d.At(-1)
	assert.False(t, ok)
	_, ok = d.At(2)
	assert.False(t, ok)
}

func TestSDequeResizeBeginPastEndPanics(t *testing.T) {
	d := flexgrid.NewSDeque[int]()
	d.ResizeEnd(2, 0)
	assert.Panics(t, func() { d.ResizeBegin(5, 0) })
}

func TestSDequeResizeEndBeforeBeginPanics(t *testing.T) {
	d := flexgrid.NewSDeque[int]()
	d.ResizeBegin(-2, 0)
	assert.Panics(t, func() { d.ResizeEnd(-5, 0) })
}

func TestSDequeResizeFuncDistinctInstances(t *testing.T) {
	d := flexgrid.NewSDeque[*int]()
	n := 0
	d.ResizeEndFunc(3, func() *int {
		n++
		v := n
		return &v
	})
	a, _ := d.At(0)
	b, _ := d.At(1)
	require.NotSame(t, a, b)
	assert.Equal(t, 1, *a)
	assert.Equal(t, 2, *b)
}
