package cachepair

import (
	"fmt"
	"iter"
	"math"
)

// Ring is a fixed-capacity ring buffer that overwrites its oldest element
// when full.
//
// Mutations and snapshots are serialized by a FIFO spin lock. The head index
// and the size live in a CounterPair, so Len, IsEmpty and IsFull never take
// the lock.
//
// It is safe for concurrent use.
type Ring[T any] struct {
	_ noCopy
	// A: index of the oldest element
	// B: number of elements
	pos CounterPair
	mu  ticketLock
	buf []T
}

// NewRing returns an empty ring holding up to capacity elements.
//
// panic if capacity <= 0 or capacity > math.MaxInt32.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("cachepair: capacity must be positive")
	}
	if capacity > math.MaxInt32 {
		panic("cachepair: capacity too large")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Append writes v after the newest element. If the ring is full, the oldest
// element is dropped.
func (r *Ring[T]) Append(v T) {
	r.mu.Lock()
	n := int64(len(r.buf))
	head := r.pos.A().Load()
	size := r.pos.B().Load()
	r.buf[(int64(head)+int64(size))%n] = v
	if int64(size) < n {
		r.pos.B().Store(size + 1)
	} else {
		r.pos.A().Store(int32((int64(head) + 1) % n))
	}
	r.mu.Unlock()
}

// Snapshot returns a copy of the elements, oldest first.
// It returns an empty slice when the ring is empty.
func (r *Ring[T]) Snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	head := int(r.pos.A().Load())
	size := int(r.pos.B().Load())
	out := make([]T, size)
	k := copy(out, r.buf[head:min(head+size, len(r.buf))])
	copy(out[k:], r.buf[:size-k])
	return out
}

// All returns an iterator over a snapshot of the elements, oldest first.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.Snapshot() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear removes all elements.
func (r *Ring[T]) Clear() {
	r.mu.Lock()
	clear(r.buf)
	r.pos.A().Store(0)
	r.pos.B().Store(0)
	r.mu.Unlock()
}

// Len returns the number of elements.
func (r *Ring[T]) Len() int {
	return int(r.pos.B().Load())
}

// Cap returns the capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.Len() == 0
}

// IsFull reports whether the next Append will drop the oldest element.
func (r *Ring[T]) IsFull() bool {
	return r.Len() == len(r.buf)
}

func (r *Ring[T]) String() string {
	s := r.Snapshot()
	return fmt.Sprintf("Ring(%v) with capacity %d, size %d", s, len(r.buf), len(s))
}
