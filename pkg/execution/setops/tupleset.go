package setops

import (
	"volcano/pkg/primitives"
	"volcano/pkg/tuple"
)

// TupleMultiset maps whole tuples to occurrence counts. Tuples are bucketed
// by hash and every probe re-checks exact tuple equality, so hash collisions
// never merge distinct tuples.
type TupleMultiset struct {
	buckets map[primitives.HashCode][]*multisetEntry
	size    int
}

type multisetEntry struct {
	tuple *tuple.Tuple
	count int
}

// NewTupleMultiset creates an empty multiset.
func NewTupleMultiset() *TupleMultiset {
	return &TupleMultiset{buckets: make(map[primitives.HashCode][]*multisetEntry)}
}

func (m *TupleMultiset) find(t *tuple.Tuple) *multisetEntry {
	for _, e := range m.buckets[t.Hash()] {
		if e.tuple.Equals(t) {
			return e
		}
	}
	return nil
}

// Add records one occurrence of the tuple and returns its new count.
// The multiset keeps a reference to the tuple on first insertion; callers
// pass owned tuples.
func (m *TupleMultiset) Add(t *tuple.Tuple) int {
	if e := m.find(t); e != nil {
		e.count++
		m.size++
		return e.count
	}
	hash := t.Hash()
	m.buckets[hash] = append(m.buckets[hash], &multisetEntry{tuple: t, count: 1})
	m.size++
	return 1
}

// Count returns the multiplicity of the tuple, zero if absent.
func (m *TupleMultiset) Count(t *tuple.Tuple) int {
	if e := m.find(t); e != nil {
		return e.count
	}
	return 0
}

// Len returns the total number of occurrences across all tuples.
func (m *TupleMultiset) Len() int {
	return m.size
}

// Distinct returns the number of distinct tuples.
func (m *TupleMultiset) Distinct() int {
	n := 0
	for _, bucket := range m.buckets {
		n += len(bucket)
	}
	return n
}

// ForEach visits every distinct tuple with its multiplicity. Visit order is
// unspecified; callers needing determinism sort afterwards.
func (m *TupleMultiset) ForEach(fn func(t *tuple.Tuple, count int)) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			fn(e.tuple, e.count)
		}
	}
}
