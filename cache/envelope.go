package cache

// envelope is the per-entry wrapper stored in an index.Node's value slot.
// It carries the user value and its absolute expiration timestamp in
// milliseconds on the cache's injected clock (0 means "never expires").
type envelope struct {
	value     interface{}
	expiresAt uint64
}

func (e *envelope) expired(now uint64) bool {
	return e.expiresAt != 0 && e.expiresAt <= now
}

const maxUint64 = ^uint64(0)

// saturatingAdd returns a+b, clamped to math.MaxUint64 on overflow so a
// huge TTL signals "effectively never" instead of wrapping around to a
// small, already-expired timestamp.
func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return maxUint64
	}
	return sum
}

// computeExpiration implements the cache's TTL-priority arithmetic (spec
// §4.2.2): a positive ttlMs wins over a positive expiresAtMs; if both are
// zero the entry never expires.
func computeExpiration(now, ttlMs, expiresAtMs uint64) uint64 {
	switch {
	case ttlMs > 0:
		return saturatingAdd(now, ttlMs)
	case expiresAtMs > 0:
		return expiresAtMs
	default:
		return 0
	}
}
