package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gowavefront/estar/cspace"
	"github.com/gowavefront/estar/numeric"
	"github.com/gowavefront/estar/queue"
)

func TestRequeueInsertAndPopOrder(t *testing.T) {
	q := queue.New()
	assert.True(t, q.IsEmpty())

	onQueue := q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	assert.True(t, onQueue)
	onQueue = q.Requeue(cspace.Node(1), 2, numeric.Infinity)
	assert.True(t, onQueue)
	onQueue = q.Requeue(cspace.Node(2), 8, numeric.Infinity)
	assert.True(t, onQueue)

	assert.False(t, q.IsEmpty())
	min, ok := q.MinKey()
	assert.True(t, ok)
	assert.Equal(t, 2.0, min)

	assert.Equal(t, cspace.Node(1), q.Pop())
	assert.Equal(t, cspace.Node(0), q.Pop())
	assert.Equal(t, cspace.Node(2), q.Pop())
	assert.True(t, q.IsEmpty())
}

func TestRequeueConsistentRemoves(t *testing.T) {
	q := queue.New()
	q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	assert.True(t, q.Contains(cspace.Node(0)))

	onQueue := q.Requeue(cspace.Node(0), 5, 5)
	assert.False(t, onQueue)
	assert.False(t, q.Contains(cspace.Node(0)))
}

func TestRequeueNoChurnOnSameKey(t *testing.T) {
	q := queue.New()
	q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	assert.Equal(t, 1, q.Len())
}

func TestRequeueUpdatesKey(t *testing.T) {
	q := queue.New()
	q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	q.Requeue(cspace.Node(0), 1, numeric.Infinity)
	min, _ := q.MinKey()
	assert.Equal(t, 1.0, min)
}

func TestPopOnEmptyPanics(t *testing.T) {
	q := queue.New()
	assert.Panics(t, func() { q.Pop() })
}

func TestPromote(t *testing.T) {
	q := queue.New()
	q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	q.Requeue(cspace.Node(1), 1, numeric.Infinity)
	assert.True(t, q.Promote(cspace.Node(0)))
	assert.Equal(t, cspace.Node(0), q.Pop())
	assert.False(t, q.Promote(cspace.Node(99)))
}

func TestClear(t *testing.T) {
	q := queue.New()
	q.Requeue(cspace.Node(0), 5, numeric.Infinity)
	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.False(t, q.Contains(cspace.Node(0)))
}

func TestDeterministicTieBreakByInsertionOrder(t *testing.T) {
	q := queue.New()
	for i := 0; i < 5; i++ {
		q.Requeue(cspace.Node(i), 3, numeric.Infinity)
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, cspace.Node(i), q.Pop())
	}
}
