// Package lru implements the Least-Recently-Used eviction policy: a hit
// moves its node to the tail (most-recently-used position); the victim is
// always the head (the oldest surviving, or least recently touched, node).
package lru

import (
	"github.com/bellirodrigo2/flexcache/internal/index"
	"github.com/bellirodrigo2/flexcache/policy"
)

// LRU is stateless: every decision is derived from the index's own order.
type LRU struct{}

// New returns an LRU policy instance.
func New() *LRU { return &LRU{} }

// Touch moves the hit node to the tail.
func (*LRU) Touch(h policy.Hooks, n *index.Node) { h.MoveToBack(n) }

// PickVictim returns the head node (nil if the index is empty).
func (*LRU) PickVictim(h policy.Hooks) *index.Node { return h.Head() }

var _ policy.Policy = (*LRU)(nil)
