package cachepair

// ticketLock is a fair, FIFO spin-lock.
//
// Goroutines acquire the lock in the exact order they called Lock.
// Lock takes a ticket and waits until serving reaches it; Unlock advances
// serving to the next ticket holder.
//
// The two words live in a CounterPair, so arriving lockers bumping next do
// not invalidate the line the current holder polls.
type ticketLock struct {
	_ noCopy
	// A: next ticket, B: serving
	tickets CounterPair
}

// Lock acquires the lock. Blocks until the lock is available.
func (m *ticketLock) Lock() {
	my := m.tickets.A().FetchAdd(1)
	serving := m.tickets.B()
	var spins int
	for serving.Load() != my {
		delay(&spins)
	}
}

// Unlock releases the lock.
func (m *ticketLock) Unlock() {
	m.tickets.B().Add(1)
}
