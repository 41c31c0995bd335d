package cachepair

import (
	"github.com/llxisdsh/pb"
)

// CounterPairGroup hands out one CounterPair per key, creating it on first
// use. It suits per-symbol or per-connection hot counters.
//
// Usage:
//
//	var fills CounterPairGroup[string]
//	p := fills.Get("BTC-USD")
//	p.A().Add(1)
//
// The zero value is ready to use.
//
// Race-detector reports from concurrent first use come from pb's plain
// TSO loads, not from this type.
type CounterPairGroup[K comparable] struct {
	_ noCopy
	m pb.MapOf[K, *CounterPair]
}

// Get returns the pair for k, creating it if absent. Concurrent callers for
// the same key always receive the same pair.
func (g *CounterPairGroup[K]) Get(k K) *CounterPair {
	p, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *CounterPair]) (*pb.EntryOf[K, *CounterPair], *CounterPair, bool) {
			if l != nil {
				return l, l.Value, true
			}
			p := new(CounterPair)
			return &pb.EntryOf[K, *CounterPair]{Value: p}, p, false
		},
	)
	return p
}

// Load returns the pair for k, if present.
func (g *CounterPairGroup[K]) Load(k K) (*CounterPair, bool) {
	return g.m.Load(k)
}

// Delete removes the pair for k. Holders of the pair may keep using it,
// but a later Get creates a fresh one.
func (g *CounterPairGroup[K]) Delete(k K) {
	g.m.Delete(k)
}

// Range calls f for each key and pair until f returns false.
func (g *CounterPairGroup[K]) Range(f func(k K, p *CounterPair) bool) {
	g.m.Range(f)
}

// Size returns the number of keys.
func (g *CounterPairGroup[K]) Size() int {
	return g.m.Size()
}
