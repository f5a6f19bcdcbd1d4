// Package policy defines the eviction-policy contract shared by the
// built-in LRU, FIFO, and Random policies. A policy never touches
// envelopes, TTL, or counters — it only reads and reorders the ordered
// index's list.
package policy

import "github.com/bellirodrigo2/flexcache/internal/index"

// Hooks is the minimal view of the Ordered Index a policy needs:
// reordering, reading the current head, and reading the current length.
// The *index.Index type itself satisfies Hooks directly; tests may
// substitute a mock to exercise a policy in isolation.
type Hooks interface {
	// MoveToFront promotes n to the head position.
	MoveToFront(n *index.Node)
	// MoveToBack promotes n to the tail position.
	MoveToBack(n *index.Node)
	// Head returns the current head node, or nil if the index is empty.
	Head() *index.Node
	// Len returns the number of indexed nodes.
	Len() int
}

// Policy is the pair of operations every eviction strategy provides.
//
//   - Touch is invoked on a successful, non-expired lookup; it may reorder
//     the hit node (LRU) or do nothing (FIFO, Random).
//   - PickVictim is invoked during capacity enforcement; it returns the
//     node to evict next, or nil if the index has no candidate (empty).
type Policy interface {
	Touch(h Hooks, n *index.Node)
	PickVictim(h Hooks) *index.Node
}

// compile-time check that *index.Index satisfies Hooks.
var _ Hooks = (*index.Index)(nil)
