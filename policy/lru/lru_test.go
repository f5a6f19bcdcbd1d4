package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bellirodrigo2/flexcache/internal/index"
)

// --- test double ---

// mockHooks records every call a policy makes against policy.Hooks so
// tests can assert exactly which list operations a policy triggers.
type mockHooks struct {
	moveToFrontCnt int
	moveToBackCnt  int
	lastMove       *index.Node

	lenVal  int
	headVal *index.Node
}

func (h *mockHooks) MoveToFront(n *index.Node) { h.moveToFrontCnt++; h.lastMove = n }
func (h *mockHooks) MoveToBack(n *index.Node)  { h.moveToBackCnt++; h.lastMove = n }
func (h *mockHooks) Head() *index.Node         { return h.headVal }
func (h *mockHooks) Len() int                  { return h.lenVal }

func newTestNode(t *testing.T, key string) *index.Node {
	t.Helper()
	idx := index.New()
	n, err := idx.Insert([]byte(key), key, 1)
	assert.NoError(t, err)
	return n
}

// Touch should promote the hit node to the tail (most-recently-used).
func TestLRU_Touch_MovesToBack(t *testing.T) {
	h := &mockHooks{}
	p := New()

	n := newTestNode(t, "k1")
	p.Touch(h, n)

	assert.Equal(t, 1, h.moveToBackCnt)
	assert.Same(t, n, h.lastMove)
	assert.Equal(t, 0, h.moveToFrontCnt)
}

// PickVictim must return whatever Hooks.Head reports.
func TestLRU_PickVictim_ReturnsHead(t *testing.T) {
	h := &mockHooks{headVal: newTestNode(t, "head")}
	p := New()

	assert.Same(t, h.headVal, p.PickVictim(h))
}

// PickVictim on an empty index must report no victim.
func TestLRU_PickVictim_EmptyIndexReturnsNil(t *testing.T) {
	h := &mockHooks{}
	p := New()

	assert.Nil(t, p.PickVictim(h))
}
