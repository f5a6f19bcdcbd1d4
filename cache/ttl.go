package cache

import "time"

// InsertTTL is a convenience wrapper over Insert for a relative duration.
// ttl is truncated to milliseconds; a non-positive ttl means "no
// expiration".
func (c *Cache) InsertTTL(key []byte, value interface{}, size int64, ttl time.Duration) error {
	var ttlMs uint64
	if ttl > 0 {
		ttlMs = uint64(ttl.Milliseconds())
	}
	return c.Insert(key, value, size, ttlMs, 0)
}

// InsertAt is a convenience wrapper over Insert for an absolute wall-clock
// instant. It converts at to the cache's injected clock by computing the
// delta against wall-clock now and adding it to the clock's current
// reading; a non-positive delta produces an expiration stamp of 1
// ("already expired" relative to any future scan), per spec §6. Computing
// the delta against two different clocks (wall-clock for "now", the
// injected clock for the cache) introduces a skew equal to the time
// between the two readings; this is inherent and accepted, not a bug.
func (c *Cache) InsertAt(key []byte, value interface{}, size int64, at time.Time) error {
	delta := at.Sub(time.Now())
	if delta <= 0 {
		return c.Insert(key, value, size, 0, 1)
	}
	expiresAt := saturatingAdd(c.clock.NowMs(), uint64(delta.Milliseconds()))
	return c.Insert(key, value, size, 0, expiresAt)
}
