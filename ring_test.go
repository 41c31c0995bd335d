package cachepair

import (
	"slices"
	"sync"
	"testing"
)

func TestRing_Basic(t *testing.T) {
	r := NewRing[int](5)
	if !r.IsEmpty() || r.IsFull() {
		t.Fatalf("new ring: IsEmpty=%v IsFull=%v", r.IsEmpty(), r.IsFull())
	}
	if got := r.Snapshot(); len(got) != 0 {
		t.Fatalf("Snapshot() = %v, want []", got)
	}

	r.Append(1)
	r.Append(2)
	r.Append(3)
	if got := r.String(); got != "Ring([1 2 3]) with capacity 5, size 3" {
		t.Fatalf("String() = %q", got)
	}

	r.Append(4)
	r.Append(5)
	if got := r.Snapshot(); !slices.Equal(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Snapshot() = %v, want [1 2 3 4 5]", got)
	}
	if !r.IsFull() {
		t.Fatal("IsFull() = false after 5 appends")
	}

	r.Append(6)
	if got := r.Snapshot(); !slices.Equal(got, []int{2, 3, 4, 5, 6}) {
		t.Fatalf("Snapshot() = %v, want [2 3 4 5 6]", got)
	}
	if r.Len() != 5 || !r.IsFull() {
		t.Fatalf("Len() = %d IsFull=%v, want 5 true", r.Len(), r.IsFull())
	}
}

func TestRing_WrapMany(t *testing.T) {
	r := NewRing[int](3)
	for i := range 100 {
		r.Append(i)
	}
	if got := r.Snapshot(); !slices.Equal(got, []int{97, 98, 99}) {
		t.Fatalf("Snapshot() = %v, want [97 98 99]", got)
	}
	if got := slices.Collect(r.All()); !slices.Equal(got, []int{97, 98, 99}) {
		t.Fatalf("All() = %v, want [97 98 99]", got)
	}
}

func TestRing_AllStopsEarly(t *testing.T) {
	r := NewRing[int](4)
	for i := range 4 {
		r.Append(i)
	}
	var seen []int
	for v := range r.All() {
		seen = append(seen, v)
		if v == 1 {
			break
		}
	}
	if !slices.Equal(seen, []int{0, 1}) {
		t.Fatalf("seen = %v, want [0 1]", seen)
	}
}

func TestRing_Clear(t *testing.T) {
	r := NewRing[string](2)
	r.Append("a")
	r.Append("b")
	r.Append("c")
	r.Clear()
	if !r.IsEmpty() || r.Len() != 0 {
		t.Fatalf("after Clear: Len() = %d", r.Len())
	}
	for i, s := range r.buf {
		if s != "" {
			t.Fatalf("buf[%d] = %q after Clear", i, s)
		}
	}
	r.Append("d")
	if got := r.Snapshot(); !slices.Equal(got, []string{"d"}) {
		t.Fatalf("Snapshot() = %v, want [d]", got)
	}
	if r.Cap() != 2 {
		t.Fatalf("Cap() = %d, want 2", r.Cap())
	}
}

func TestNewRing_Panics(t *testing.T) {
	for _, n := range []int{0, -5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewRing(%d) did not panic", n)
				}
			}()
			NewRing[int](n)
		}()
	}
}

func TestRing_Concurrent(t *testing.T) {
	const (
		writers  = 8
		capacity = 16
	)
	n := iterations(20_000)
	r := NewRing[int](capacity)

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range n {
				r.Append(w*n + i)
			}
		}()
	}
	stop := make(chan struct{})
	var rd sync.WaitGroup
	rd.Add(1)
	go func() {
		defer rd.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if l := len(r.Snapshot()); l > capacity {
				t.Errorf("snapshot length %d > capacity %d", l, capacity)
				return
			}
			if l := r.Len(); l < 0 || l > capacity {
				t.Errorf("Len() = %d out of range", l)
				return
			}
		}
	}()
	wg.Wait()
	close(stop)
	rd.Wait()

	if !r.IsFull() {
		t.Fatalf("Len() = %d, want %d", r.Len(), capacity)
	}
	// per writer, surviving values keep their append order
	last := make(map[int]int)
	for _, v := range r.Snapshot() {
		w := v / n
		if prev, ok := last[w]; ok && prev >= v {
			t.Fatalf("writer %d: %d after %d", w, v, prev)
		}
		last[w] = v
	}
}
