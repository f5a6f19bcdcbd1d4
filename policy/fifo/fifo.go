// Package fifo implements the First-In-First-Out eviction policy: a hit is
// a no-op, and the victim is always the head (the node that has resided
// longest regardless of how often it was accessed).
//
// Use FIFO when predictable, access-independent eviction order matters
// more than hit rate — e.g. time-ordered buffers where recency of access
// says nothing about future relevance.
package fifo

import (
	"github.com/bellirodrigo2/flexcache/internal/index"
	"github.com/bellirodrigo2/flexcache/policy"
)

// FIFO is stateless.
type FIFO struct{}

// New returns a FIFO policy instance.
func New() *FIFO { return &FIFO{} }

// Touch is a no-op: FIFO ignores access patterns entirely.
func (*FIFO) Touch(policy.Hooks, *index.Node) {}

// PickVictim returns the head node (nil if the index is empty).
func (*FIFO) PickVictim(h policy.Hooks) *index.Node { return h.Head() }

var _ policy.Policy = (*FIFO)(nil)
