package cache

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bellirodrigo2/flexcache/policy"
	"github.com/bellirodrigo2/flexcache/policy/lru"
)

// RemovalCause explains why an entry left the cache. Every removal
// (explicit, TTL, eviction, clear) flows through the single unified
// removal path and reports exactly one cause to the notification hook.
type RemovalCause int

const (
	// CauseExplicit — removed by an explicit Remove call.
	CauseExplicit RemovalCause = iota
	// CauseExpired — removed because its TTL had elapsed.
	CauseExpired
	// CauseEvicted — removed by the active eviction policy to satisfy
	// a capacity limit.
	CauseEvicted
	// CauseCleared — removed as part of Clear or Destroy.
	CauseCleared
)

// String renders the cause the way the structured logger reports it.
func (c RemovalCause) String() string {
	switch c {
	case CauseExplicit:
		return "explicit"
	case CauseExpired:
		return "expired"
	case CauseEvicted:
		return "evicted"
	case CauseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Options configures a Cache. Zero values are safe; New applies the same
// defaults the teacher corpus applies for its own cache constructors:
//   - nil Policy  => LRU
//   - nil Clock   => wall clock (time.Now, millisecond resolution)
//   - MaxItems/MaxBytes <= 0 => that limit is disabled
type Options struct {
	// Policy selects the eviction strategy. nil defaults to LRU.
	Policy policy.Policy

	// Clock is the injected time source. nil defaults to the system
	// wall clock.
	Clock Clock

	// MaxItems caps the number of resident entries; 0 disables the
	// count limit.
	MaxItems int64

	// MaxBytes caps the sum of every entry's size contribution; 0
	// disables the size limit.
	MaxBytes int64

	// ScanInterval throttles MaybeScanAndEvict: an automatic scan only
	// runs once this much time has elapsed since the last one. 0 means
	// "always scan".
	ScanInterval time.Duration

	// KeyCopy, if set, is called on Insert to obtain a cache-owned copy
	// of the key; an error signals allocation failure and aborts the
	// insert. If unset, the cache stores the caller's slice directly
	// and KeyRelease must also be unset.
	KeyCopy func(key []byte) ([]byte, error)
	// KeyRelease releases a key previously produced by KeyCopy. It must
	// tolerate any pointer KeyCopy ever returned.
	KeyRelease func(key []byte)

	// ValueCopy and ValueRelease are the value-side counterparts of
	// KeyCopy/KeyRelease.
	ValueCopy    func(value interface{}) (interface{}, error)
	ValueRelease func(value interface{})

	// OnRemove is invoked exactly once per removed entry, before key and
	// value release, with the key/value/size observable as if the entry
	// were still live. It is skipped when unset. A panic raised from
	// OnRemove is recovered and logged — the removal path still
	// completes — never re-raised to the caller.
	OnRemove func(key []byte, value interface{}, size int64, cause RemovalCause)

	// Logger receives structured, leveled log lines at construction and
	// Destroy time, and an error line when a panic from OnRemove is
	// recovered. Ordinary Insert/Lookup/Remove calls log nothing, which
	// would reintroduce the statistics the spec excludes as a feature.
	// A nil Logger disables logging.
	Logger *zerolog.Logger
}

func (o Options) resolvePolicy() policy.Policy {
	if o.Policy != nil {
		return o.Policy
	}
	return lru.New()
}

func (o Options) resolveClock() Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return systemClock{}
}

func (o Options) resolveLogger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
