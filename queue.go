package cachepair

const maxQueueCapacity = 1 << 30

// Queue is a bounded single-producer/single-consumer FIFO queue.
//
// The consumer owns the head index and the producer owns the tail index.
// Both live in a CounterPair, so the producer publishing a new tail never
// invalidates the line the consumer is advancing, and vice versa.
//
// Exactly one goroutine may call the push methods and exactly one goroutine
// may call the pop methods at any time. Len and Cap may be called from
// anywhere.
type Queue[T any] struct {
	_ noCopy
	// A: head, written by the consumer
	// B: tail, written by the producer
	pos  CounterPair
	mask uint32
	buf  []T
}

// NewQueue returns a queue holding at least capacity elements.
// The capacity is rounded up to a power of two.
//
// panic if capacity <= 0 or capacity > 1<<30.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("cachepair: capacity must be positive")
	}
	if capacity > maxQueueCapacity {
		panic("cachepair: capacity too large")
	}
	n := nextPowOf2(uint32(capacity))
	return &Queue[T]{
		mask: n - 1,
		buf:  make([]T, n),
	}
}

// TryPush appends v at the tail. It returns false if the queue is full.
// Producer only.
func (q *Queue[T]) TryPush(v T) bool {
	tail := q.pos.B().Load()
	head := q.pos.A().Load()
	if uint32(tail-head) > q.mask {
		return false
	}
	q.buf[uint32(tail)&q.mask] = v
	q.pos.B().Store(tail + 1)
	return true
}

// Push appends v at the tail, waiting while the queue is full.
// Producer only.
func (q *Queue[T]) Push(v T) {
	var spins int
	for !q.TryPush(v) {
		delay(&spins)
	}
}

// TryPop removes and returns the element at the head. It returns false if
// the queue is empty. Consumer only.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	head := q.pos.A().Load()
	tail := q.pos.B().Load()
	if head == tail {
		return v, false
	}
	i := uint32(head) & q.mask
	v = q.buf[i]
	var zero T
	q.buf[i] = zero
	q.pos.A().Store(head + 1)
	return v, true
}

// Pop removes and returns the element at the head, waiting while the queue
// is empty. Consumer only.
func (q *Queue[T]) Pop() T {
	var spins int
	for {
		if v, ok := q.TryPop(); ok {
			return v
		}
		delay(&spins)
	}
}

// Len returns the number of queued elements. Under concurrent use the
// result is a momentary estimate in [0, Cap()].
func (q *Queue[T]) Len() int {
	head := q.pos.A().Load()
	tail := q.pos.B().Load()
	n := uint32(tail - head)
	if n > q.mask+1 {
		// head is stale relative to tail
		return int(q.mask + 1)
	}
	return int(n)
}

// Cap returns the capacity of the queue.
func (q *Queue[T]) Cap() int {
	return int(q.mask + 1)
}
