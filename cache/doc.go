// Package cache implements the single-threaded in-memory key-value cache:
// an intrusive ordered index (internal/index) wrapped with TTL metadata,
// capacity limits, a time source, optional key/value copy/release hooks,
// a removal notification hook, and a pluggable eviction policy
// (policy/lru, policy/fifo, policy/random).
//
// Design
//
//   - Concurrency: none. Every public method runs to completion
//     synchronously; there is no mutex, no goroutine, no atomic anywhere
//     in this package. Callers sharing a *Cache across goroutines must
//     serialize externally.
//
//   - Storage: internal/index keeps a map[string]*index.Node for O(1)
//     lookup and an intrusive doubly linked list for O(1) ordered
//     traversal and reordering. Both structures share the same node.
//
//   - TTL: entries carry an absolute expiration timestamp in milliseconds
//     on the injected Clock (0 = never). Expiration is lazy on Lookup and
//     eager on ScanAndEvict/MaybeScanAndEvict.
//
//   - Capacity: MaxItems and MaxBytes (each 0 = disabled) are enforced
//     after every successful Insert and at the end of every scan, by
//     repeatedly asking the active policy for a victim until both limits
//     are satisfied or the policy has no candidate left.
//
//   - Removal: every removal cause (explicit Remove, TTL expiration,
//     capacity eviction, Clear/Destroy) funnels through one unified path
//     that notifies, unlinks, and releases — see removeNode.
//
// Basic usage
//
//	c := cache.New(cache.Options{MaxItems: 1024})
//	_ = c.Insert([]byte("a"), "1", 1, 0, 0)
//	if v, ok := c.Lookup([]byte("a")); ok {
//	    _ = v
//	}
//	c.Remove([]byte("a"))
//
// With TTL
//
//	c := cache.New(cache.Options{MaxItems: 1024})
//	_ = c.InsertTTL([]byte("tmp"), "v", 1, 200*time.Millisecond)
//
// With an alternative policy (FIFO)
//
//	c := cache.New(cache.Options{MaxItems: 1024, Policy: fifo.New()})
//
// See cacheconfig for loading and validating Options from environment
// variables or a config file, including string-based policy selection.
package cache
