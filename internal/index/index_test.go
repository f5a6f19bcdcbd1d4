package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_InsertRejectsEmptyKey(t *testing.T) {
	idx := New()
	_, err := idx.Insert(nil, "v", 0)
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_InsertRejectsDuplicate(t *testing.T) {
	idx := New()
	_, err := idx.Insert([]byte("a"), "1", 1)
	require.NoError(t, err)

	_, err = idx.Insert([]byte("a"), "2", 1)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_InsertAppendsAtTail(t *testing.T) {
	idx := New()
	a, _ := idx.Insert([]byte("a"), 1, 1)
	b, _ := idx.Insert([]byte("b"), 2, 1)
	c, _ := idx.Insert([]byte("c"), 2, 1)

	assert.Same(t, a, idx.Head())
	assert.Same(t, c, idx.Tail())
	assert.Same(t, b, a.Next())
	assert.Same(t, a, b.Prev())
}

func TestIndex_LookupAbsent(t *testing.T) {
	idx := New()
	_, ok := idx.Lookup([]byte("missing"))
	assert.False(t, ok)
}

func TestIndex_RemoveNodeUpdatesCounters(t *testing.T) {
	idx := New()
	a, _ := idx.Insert([]byte("a"), 1, 4)
	b, _ := idx.Insert([]byte("b"), 2, 6)

	idx.RemoveNode(a)
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, int64(6), idx.TotalBytes())
	assert.Same(t, b, idx.Head())
	assert.Same(t, b, idx.Tail())

	_, ok := idx.Lookup([]byte("a"))
	assert.False(t, ok)
}

func TestIndex_RemoveNodeNoOpIfAlreadyRemoved(t *testing.T) {
	idx := New()
	a, _ := idx.Insert([]byte("a"), 1, 1)
	idx.RemoveNode(a)
	idx.RemoveNode(a) // must not double-decrement
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, int64(0), idx.TotalBytes())
}

func TestIndex_PopFrontPopBack(t *testing.T) {
	idx := New()
	idx.Insert([]byte("a"), 1, 1)
	idx.Insert([]byte("b"), 2, 1)
	idx.Insert([]byte("c"), 3, 1)

	front := idx.PopFront()
	assert.Equal(t, []byte("a"), front.Key())

	back := idx.PopBack()
	assert.Equal(t, []byte("c"), back.Key())

	assert.Equal(t, 1, idx.Len())
	assert.Nil(t, idx.PopFront().Next())
}

func TestIndex_PopEmptyIsNoOp(t *testing.T) {
	idx := New()
	assert.Nil(t, idx.PopFront())
	assert.Nil(t, idx.PopBack())
}

func TestIndex_MoveToFrontAndBack(t *testing.T) {
	idx := New()
	a, _ := idx.Insert([]byte("a"), 1, 1)
	b, _ := idx.Insert([]byte("b"), 2, 1)
	c, _ := idx.Insert([]byte("c"), 3, 1)

	idx.MoveToFront(c)
	assert.Same(t, c, idx.Head())
	assert.Same(t, b, idx.Tail())

	idx.MoveToBack(c)
	assert.Same(t, c, idx.Tail())
	assert.Same(t, a, idx.Head())

	// moving the node already at the target end is a no-op.
	idx.MoveToBack(c)
	assert.Same(t, c, idx.Tail())
}

func TestIndex_Clear(t *testing.T) {
	idx := New()
	idx.Insert([]byte("a"), 1, 3)
	idx.Insert([]byte("b"), 2, 5)

	idx.Clear()
	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, int64(0), idx.TotalBytes())
	assert.Nil(t, idx.Head())
	assert.Nil(t, idx.Tail())

	_, ok := idx.Lookup([]byte("a"))
	assert.False(t, ok)
}

func TestIndex_KeyEqualityIsLengthAndContent(t *testing.T) {
	idx := New()
	idx.Insert([]byte("ab"), 1, 0)
	_, ok := idx.Lookup([]byte("ab"))
	assert.True(t, ok)
	_, ok = idx.Lookup([]byte("a"))
	assert.False(t, ok)
}
