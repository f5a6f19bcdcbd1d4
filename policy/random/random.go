// Package random implements the Random eviction policy: a hit is a no-op,
// and the victim is the node at a uniformly random position in
// [0, item_count), reached by forward traversal from the head. The
// traversal is O(n) but only runs on eviction, never on a hit.
package random

import (
	"math/rand/v2"

	"github.com/bellirodrigo2/flexcache/internal/index"
	"github.com/bellirodrigo2/flexcache/policy"
)

// Source is a 32-bit uniform random source, injected so victim selection
// is deterministic and reproducible in tests. The policy assumes rng is
// uniform over the full 32-bit range.
type Source func() uint32

// Random picks an eviction victim uniformly at random among resident
// nodes. No third-party RNG library in the reference corpus offers a
// better fit than the standard library's math/rand/v2 for the default
// source — Source is a plain injected function precisely so callers may
// substitute any generator (including a third-party one) without this
// package needing to depend on it.
type Random struct {
	rng Source
}

// New returns a Random policy using rng as its victim-selection source.
// A nil rng falls back to math/rand/v2.
func New(rng Source) *Random {
	if rng == nil {
		rng = defaultSource
	}
	return &Random{rng: rng}
}

func defaultSource() uint32 { return rand.Uint32() }

// Touch is a no-op: Random does not react to access patterns.
func (*Random) Touch(policy.Hooks, *index.Node) {}

// PickVictim returns the node at rng() mod item_count, or nil if empty.
func (p *Random) PickVictim(h policy.Hooks) *index.Node {
	n := h.Len()
	if n == 0 {
		return nil
	}
	target := int(p.rng() % uint32(n))
	cur := h.Head()
	for i := 0; i < target && cur != nil; i++ {
		cur = cur.Next()
	}
	return cur
}

var _ policy.Policy = (*Random)(nil)
