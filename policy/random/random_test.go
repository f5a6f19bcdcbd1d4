package random

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bellirodrigo2/flexcache/internal/index"
)

// *index.Index is passed directly as policy.Hooks; Random operates against
// the real list so the forward-traversal-by-count logic is exercised.
func TestRandom_PickVictim_UsesRngModuloCount(t *testing.T) {
	idx := index.New()
	a, _ := idx.Insert([]byte("a"), 1, 1)
	_, _ = idx.Insert([]byte("b"), 2, 1)
	c, _ := idx.Insert([]byte("c"), 3, 1)

	calls := 0
	seq := []uint32{0, 2}
	p := New(func() uint32 {
		v := seq[calls]
		calls++
		return v
	})

	assert.Same(t, a, p.PickVictim(idx))
	assert.Same(t, c, p.PickVictim(idx))
}

func TestRandom_PickVictim_EmptyIndexReturnsNil(t *testing.T) {
	idx := index.New()
	p := New(func() uint32 { t.Fatal("rng must not be called on empty index"); return 0 })

	assert.Nil(t, p.PickVictim(idx))
}

func TestRandom_Touch_IsNoOp(t *testing.T) {
	idx := index.New()
	n, _ := idx.Insert([]byte("a"), 1, 1)

	p := New(func() uint32 { return 0 })
	p.Touch(idx, n)

	// still at head/tail: Touch never reorders.
	assert.Same(t, n, idx.Head())
	assert.Same(t, n, idx.Tail())
}

func TestRandom_NilRngFallsBackToDefault(t *testing.T) {
	idx := index.New()
	idx.Insert([]byte("a"), 1, 1)

	p := New(nil)
	assert.NotPanics(t, func() { p.PickVictim(idx) })
}
