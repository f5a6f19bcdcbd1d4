package cache

import "time"

// Clock is the cache's injected time source, returning milliseconds. It
// must be non-decreasing across calls in a single cache's lifetime; the
// cache does not guard against time going backwards (spec §5).
type Clock interface {
	NowMs() uint64
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() uint64

// NowMs implements Clock.
func (f ClockFunc) NowMs() uint64 { return f() }

// systemClock reads the real wall clock via time.Now, truncated to
// milliseconds. Used when Options.Clock is nil.
type systemClock struct{}

func (systemClock) NowMs() uint64 {
	return uint64(time.Now().UnixMilli())
}
