package cache

import "errors"

// Validation and allocation-failure errors. All are surfaced synchronously
// by the operation that caused them; none of them leave a partial insert
// behind. ErrEmptyKey, ErrNegativeSize and ErrClosed are reported before
// anything changes; ErrDuplicateKey and ErrAllocationFailure are reported
// after Insert's leading MaybeScanAndEvict, which may already have removed
// expired or over-capacity entries.
var (
	// ErrEmptyKey is returned by Insert when key has zero length.
	ErrEmptyKey = errors.New("cache: key must not be empty")

	// ErrNegativeSize is returned by Insert when size is negative.
	ErrNegativeSize = errors.New("cache: size must be non-negative")

	// ErrDuplicateKey is returned by Insert when the key is already
	// present. Duplicate-key insertion is never an update; callers must
	// Remove the existing entry first.
	ErrDuplicateKey = errors.New("cache: duplicate key")

	// ErrAllocationFailure is returned by Insert when a configured
	// KeyCopy or ValueCopy hook reports an allocation failure. Any
	// partial allocation made during the same call is released before
	// the error is returned.
	ErrAllocationFailure = errors.New("cache: allocation failure")

	// ErrClosed is returned by Insert on a Cache that has already been
	// Destroyed. Lookup/Remove/ScanAndEvict report a plain miss/no-op
	// instead of an error on a closed cache.
	ErrClosed = errors.New("cache: closed")
)
