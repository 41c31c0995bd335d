// Package cachepair provides a pair of atomic counters laid out on separate
// cache lines, so goroutines updating one never invalidate the line holding
// the other.
//
// The cache-line size is fixed at compile time. It comes from
// golang.org/x/sys/cpu, or 64 when that reports nothing. It can be forced
// with build tags:
//
//	go build -tags=cachepair_cachelinesize_128
//	go build -tags=cachepair_nocpu // always 64
package cachepair

import (
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/cachepair/internal/opt"
)

// CacheLineSize is the assumed size of one CPU cache line, in bytes.
// Both counters of a CounterPair start on a multiple of it, and are
// separated by exactly it.
const CacheLineSize = opt.CacheLineSize_

const (
	counterSize = unsafe.Sizeof(Counter{})
	// counterPad fills the rest of A's line.
	counterPad = CacheLineSize - counterSize
	// pairWords covers the worst-case alignment skew, A's line, and B's line.
	pairWords = 3 * CacheLineSize / unsafe.Sizeof(uint32(0))
)

// Counter is a 32-bit integer accessed only atomically.
//
// All operations are indivisible with respect to other goroutines using the
// same Counter, and never observe a torn value. Overflow wraps.
type Counter struct {
	v atomic.Int32
}

// Load atomically loads and returns the value.
//
//go:nosplit
func (c *Counter) Load() int32 {
	return c.v.Load()
}

// Store atomically stores v.
//
//go:nosplit
func (c *Counter) Store(v int32) {
	c.v.Store(v)
}

// FetchAdd atomically adds delta and returns the previous value.
//
//go:nosplit
func (c *Counter) FetchAdd(delta int32) (old int32) {
	return c.v.Add(delta) - delta
}

// Add atomically adds delta and returns the new value.
//
//go:nosplit
func (c *Counter) Add(delta int32) (new int32) {
	return c.v.Add(delta)
}

// Swap atomically stores v and returns the previous value.
//
//go:nosplit
func (c *Counter) Swap(v int32) (old int32) {
	return c.v.Swap(v)
}

// CompareAndSwap executes the compare-and-swap operation for the value.
//
//go:nosplit
func (c *Counter) CompareAndSwap(old, new int32) (swapped bool) {
	return c.v.CompareAndSwap(old, new)
}

// CounterPair holds two independent atomic counters, A and B, each starting
// on a CacheLineSize boundary and CacheLineSize bytes apart.
//
// Go cannot over-align a struct type, so the pair carries its own slack:
// the first cache-line boundary inside the backing array is found from the
// pair's current address on every access. A sits on that boundary, B one
// line later, and a trailing line keeps B's line inside the pair.
//
// The pair keeps no invariant across the values of A and B,
// and no operation touches both atomically.
//
// The zero value is ready to use, with both counters at 0.
// A CounterPair must not be copied after first use.
//
// Size: 3 * CacheLineSize bytes.
type CounterPair struct {
	_   noCopy
	buf [pairWords]uint32
}

// line returns the first CacheLineSize boundary inside p.buf.
//
//go:nosplit
func (p *CounterPair) line() unsafe.Pointer {
	base := unsafe.Pointer(&p.buf)
	skew := (CacheLineSize - uintptr(base)%CacheLineSize) % CacheLineSize
	return unsafe.Add(base, skew)
}

// A returns the first counter.
//
//go:nosplit
func (p *CounterPair) A() *Counter {
	return (*Counter)(p.line())
}

// B returns the second counter.
//
//go:nosplit
func (p *CounterPair) B() *Counter {
	return (*Counter)(unsafe.Add(p.line(), counterSize+counterPad))
}

// Snapshot loads A, then B. The two loads are independent; the result is
// not a joint snapshot if either counter is being written concurrently.
func (p *CounterPair) Snapshot() (a, b int32) {
	return p.A().Load(), p.B().Load()
}

// Offset reports address(B) - address(A). It is CacheLineSize for every pair.
func (p *CounterPair) Offset() uintptr {
	return uintptr(unsafe.Pointer(p.B())) - uintptr(unsafe.Pointer(p.A()))
}
