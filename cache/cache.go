package cache

import (
	"github.com/rs/zerolog"

	"github.com/bellirodrigo2/flexcache/internal/index"
	"github.com/bellirodrigo2/flexcache/policy"
)

// Cache is a single-threaded in-memory key-value cache combining O(1)
// keyed lookup with ordered traversal, TTL expiration, a pluggable
// eviction policy, and per-entry lifecycle hooks.
//
// Cache is explicitly not safe for concurrent use: no operation
// synchronizes, blocks, or yields. Callers sharing a Cache across
// goroutines must serialize externally.
type Cache struct {
	idx    *index.Index
	policy policy.Policy
	clock  Clock
	log    zerolog.Logger

	maxItems int64
	maxBytes int64

	scanIntervalMs uint64
	lastScanMs     uint64

	keyCopy      func(key []byte) ([]byte, error)
	keyRelease   func(key []byte)
	valueCopy    func(value interface{}) (interface{}, error)
	valueRelease func(value interface{})
	onRemove     func(key []byte, value interface{}, size int64, cause RemovalCause)

	closed bool
}

// New constructs a Cache. See Options for defaults.
func New(opt Options) *Cache {
	log := opt.resolveLogger()
	c := &Cache{
		idx:            index.New(),
		policy:         opt.resolvePolicy(),
		clock:          opt.resolveClock(),
		log:            log,
		maxItems:       opt.MaxItems,
		maxBytes:       opt.MaxBytes,
		scanIntervalMs: uint64(opt.ScanInterval.Milliseconds()),
		keyCopy:        opt.KeyCopy,
		keyRelease:     opt.KeyRelease,
		valueCopy:      opt.ValueCopy,
		valueRelease:   opt.ValueRelease,
		onRemove:       opt.OnRemove,
	}
	if c.maxItems < 0 {
		c.maxItems = 0
	}
	if c.maxBytes < 0 {
		c.maxBytes = 0
	}
	log.Debug().
		Int64("max_items", c.maxItems).
		Int64("max_bytes", c.maxBytes).
		Uint64("scan_interval_ms", c.scanIntervalMs).
		Msg("cache constructed")
	return c
}

// Insert adds a new entry. It never updates an existing one: a duplicate
// key is rejected with ErrDuplicateKey, and the caller must Remove first.
//
// If both ttlMs and expiresAtMs are non-zero, ttlMs wins. If both are
// zero, the entry never expires. After a successful insert, capacity
// enforcement runs and may immediately evict entries, possibly including
// the one just inserted if the policy chooses it.
func (c *Cache) Insert(key []byte, value interface{}, size int64, ttlMs, expiresAtMs uint64) error {
	if c.closed {
		return ErrClosed
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if size < 0 {
		return ErrNegativeSize
	}

	c.MaybeScanAndEvict()

	if _, exists := c.idx.Lookup(key); exists {
		return ErrDuplicateKey
	}

	storedKey := key
	if c.keyCopy != nil {
		kk, err := c.keyCopy(key)
		if err != nil {
			return ErrAllocationFailure
		}
		storedKey = kk
	}

	storedVal := value
	if c.valueCopy != nil {
		vv, err := c.valueCopy(value)
		if err != nil {
			if c.keyCopy != nil && c.keyRelease != nil {
				c.keyRelease(storedKey)
			}
			return ErrAllocationFailure
		}
		storedVal = vv
	}

	env := &envelope{
		value:     storedVal,
		expiresAt: computeExpiration(c.clock.NowMs(), ttlMs, expiresAtMs),
	}

	if _, err := c.idx.Insert(storedKey, env, size); err != nil {
		// Duplicate check above already guarded this; reaching here
		// would mean a raced insert, which cannot happen in a
		// single-threaded cache. Unwind defensively regardless.
		if c.keyCopy != nil && c.keyRelease != nil {
			c.keyRelease(storedKey)
		}
		if c.valueCopy != nil && c.valueRelease != nil {
			c.valueRelease(storedVal)
		}
		return ErrDuplicateKey
	}

	c.enforceCapacity()
	return nil
}

// Lookup returns the value for key if present and not expired. On hit,
// the policy's Touch hook runs. An expired entry is removed inline
// (invoking the notification hook) and reported as absent.
func (c *Cache) Lookup(key []byte) (interface{}, bool) {
	if c.closed {
		return nil, false
	}
	n, ok := c.idx.Lookup(key)
	if !ok {
		return nil, false
	}

	env := n.Value().(*envelope)
	if env.expired(c.clock.NowMs()) {
		c.removeNode(n, CauseExpired)
		return nil, false
	}

	c.policy.Touch(c.idx, n)
	return env.value, true
}

// Remove deletes key if present and reports whether it existed.
func (c *Cache) Remove(key []byte) bool {
	if c.closed {
		return false
	}
	n, ok := c.idx.Lookup(key)
	if !ok {
		return false
	}
	c.removeNode(n, CauseExplicit)
	return true
}

// ScanAndEvict removes every expired entry, then enforces capacity until
// satisfied or the policy yields no further victim.
func (c *Cache) ScanAndEvict() {
	if c.closed {
		return
	}
	c.scanExpired()
	c.enforceCapacity()
}

// MaybeScanAndEvict runs ScanAndEvict only when the configured throttle
// permits: the interval is zero, no scan has ever run, or enough time has
// elapsed since the last one. The last-scan timestamp is updated whenever
// a scan actually runs, regardless of how many entries expired.
func (c *Cache) MaybeScanAndEvict() {
	now := c.clock.NowMs()
	if c.scanIntervalMs == 0 || c.lastScanMs == 0 || now-c.lastScanMs >= c.scanIntervalMs {
		c.ScanAndEvict()
		c.lastScanMs = now
	}
}

// Clear removes every entry, invoking the notification hook once per
// entry.
func (c *Cache) Clear() {
	n := c.idx.Head()
	for n != nil {
		next := n.Next()
		c.removeNode(n, CauseCleared)
		n = next
	}
}

// Destroy clears the cache and marks it closed. Further operations on a
// destroyed cache change nothing: Insert returns ErrClosed, Remove and
// ScanAndEvict are no-ops, and Lookup reports absence, mirroring the
// teacher's soft-close convention.
func (c *Cache) Destroy() {
	c.Clear()
	c.closed = true
	c.log.Debug().Msg("cache destroyed")
}

// Len returns the number of resident entries.
func (c *Cache) Len() int { return c.idx.Len() }

// TotalBytes returns the sum of every resident entry's size contribution.
func (c *Cache) TotalBytes() int64 { return c.idx.TotalBytes() }

// -------------------- internals --------------------

// scanExpired walks the list from the head, removing every node whose
// envelope has expired. The successor is captured before any removal, so
// the traversal survives unlinking the current node; it halts when the
// captured successor is nil, which a null-terminated list guarantees for
// any node that is unlinked and never relinked elsewhere.
func (c *Cache) scanExpired() {
	now := c.clock.NowMs()
	n := c.idx.Head()
	for n != nil {
		next := n.Next()
		env := n.Value().(*envelope)
		if env.expired(now) {
			c.removeNode(n, CauseExpired)
		}
		n = next
	}
}

// enforceCapacity evicts victims (via the active policy) until both
// configured limits are satisfied or the policy yields no victim. The
// loop is bounded by the current item count: each iteration removes
// exactly one node.
func (c *Cache) enforceCapacity() {
	for c.overCapacity() {
		victim := c.policy.PickVictim(c.idx)
		if victim == nil {
			return
		}
		c.removeNode(victim, CauseEvicted)
	}
}

func (c *Cache) overCapacity() bool {
	if c.maxItems > 0 && int64(c.idx.Len()) > c.maxItems {
		return true
	}
	if c.maxBytes > 0 && c.idx.TotalBytes() > c.maxBytes {
		return true
	}
	return false
}

// removeNode is the single unified removal path every cause routes
// through: snapshot, notify, unlink (counters update here), release key,
// release value. Ordering is load-bearing — the hook observes the entry
// as if still live, and the key/value remain dereferenceable while it
// runs.
func (c *Cache) removeNode(n *index.Node, cause RemovalCause) {
	env := n.Value().(*envelope)
	key := n.Key()
	val := env.value
	size := n.Size()

	if c.onRemove != nil {
		c.invokeOnRemove(key, val, size, cause)
	}

	c.idx.RemoveNode(n)

	if c.keyRelease != nil {
		c.keyRelease(key)
	}
	if c.valueRelease != nil {
		c.valueRelease(val)
	}
}

// invokeOnRemove calls the notification hook with panic containment: the
// removal path must still complete even if a host-supplied callback
// misbehaves, and the cache never re-raises the panic itself.
func (c *Cache) invokeOnRemove(key []byte, value interface{}, size int64, cause RemovalCause) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Str("cause", cause.String()).Msg("on-remove hook panicked")
		}
	}()
	c.onRemove(key, value, size, cause)
}
