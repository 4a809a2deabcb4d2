package pqueue

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mu-tools/mu-store/store"
)

func newPQueue(t *testing.T, capacity int) *PQueue {
	t.Helper()
	q := New(make([]unsafe.Pointer, capacity), capacity)
	require.NotNil(t, q)
	return q
}

func TestNewValidation(t *testing.T) {
	assert.Nil(t, New(nil, 4))
	assert.Nil(t, New(make([]unsafe.Pointer, 4), 0))
	assert.Nil(t, New(make([]unsafe.Pointer, 2), 4))
	assert.NotNil(t, New(make([]unsafe.Pointer, 4), 4))
}

func TestNilPQueueAccessors(t *testing.T) {
	var q *PQueue
	assert.Equal(t, 0, q.Capacity())
	assert.Equal(t, 0, q.Count())
	assert.True(t, q.IsEmpty())
	assert.False(t, q.IsFull())
	assert.ErrorIs(t, q.Clear(), store.ErrParam)
	assert.ErrorIs(t, q.Put(nil), store.ErrParam)
}

func TestFIFOOrder(t *testing.T) {
	q := newPQueue(t, 3)
	vals := []int{10, 20, 30}
	for i := range vals {
		require.NoError(t, q.Put(unsafe.Pointer(&vals[i])))
	}
	assert.ErrorIs(t, q.Put(unsafe.Pointer(&vals[0])), store.ErrFull)

	for i := range vals {
		p, err := q.Get()
		require.NoError(t, err)
		assert.Equal(t, vals[i], *(*int)(p))
	}
	_, err := q.Get()
	assert.ErrorIs(t, err, store.ErrEmpty)
}

func TestWraparound(t *testing.T) {
	q := newPQueue(t, 2)
	for i := 0; i < 11; i++ {
		v := i
		require.NoError(t, q.Put(unsafe.Pointer(&v)))
		p, err := q.Get()
		require.NoError(t, err)
		assert.Equal(t, i, *(*int)(p))
	}
}

func TestNilItemIsLegal(t *testing.T) {
	q := newPQueue(t, 2)
	require.NoError(t, q.Put(nil))
	assert.Equal(t, 1, q.Count())

	p, err := q.Get()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPeek(t *testing.T) {
	q := newPQueue(t, 2)
	v := 42
	require.NoError(t, q.Put(unsafe.Pointer(&v)))

	p, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 42, *(*int)(p))
	assert.Equal(t, 1, q.Count())

	_, _ = q.Get()
	_, err = q.Peek()
	assert.ErrorIs(t, err, store.ErrEmpty)
}

func TestClear(t *testing.T) {
	q := newPQueue(t, 2)
	v := 1
	require.NoError(t, q.Put(unsafe.Pointer(&v)))
	require.NoError(t, q.Clear())
	assert.True(t, q.IsEmpty())
	_, err := q.Get()
	assert.ErrorIs(t, err, store.ErrEmpty)
}
