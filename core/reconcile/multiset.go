package reconcile

// Multiset counts pairs while remembering first-insertion order, so every
// derived list is deterministic.
type Multiset struct {
	counts map[Pair]int
	order  []Pair
	total  int
}

// NewMultiset creates a multiset holding the given pairs.
func NewMultiset(pairs ...Pair) *Multiset {
	m := &Multiset{counts: make(map[Pair]int, len(pairs))}
	for _, p := range pairs {
		m.Add(p)
	}
	return m
}

// Add inserts one occurrence of p.
func (m *Multiset) Add(p Pair) {
	if _, ok := m.counts[p]; !ok {
		m.order = append(m.order, p)
	}
	m.counts[p]++
	m.total++
}

// Count returns the multiplicity of p.
func (m *Multiset) Count(p Pair) int {
	return m.counts[p]
}

// Contains reports whether p occurs at least once.
func (m *Multiset) Contains(p Pair) bool {
	return m.counts[p] > 0
}

// Len returns the total number of occurrences.
func (m *Multiset) Len() int {
	return m.total
}

// Keys returns the distinct pairs in insertion order.
func (m *Multiset) Keys() []Pair {
	out := make([]Pair, len(m.order))
	copy(out, m.order)
	return out
}

// Equal reports whether both multisets hold the same pairs with the same
// multiplicities.
func (m *Multiset) Equal(other *Multiset) bool {
	if m.total != other.total || len(m.counts) != len(other.counts) {
		return false
	}
	for p, n := range m.counts {
		if other.counts[p] != n {
			return false
		}
	}
	return true
}

// Subtract returns the distinct pairs whose multiplicity in m exceeds their
// multiplicity in other, in m's insertion order.
func (m *Multiset) Subtract(other *Multiset) []Pair {
	var out []Pair
	for _, p := range m.order {
		if m.counts[p] > other.counts[p] {
			out = append(out, p)
		}
	}
	return out
}

// SymmetricKeyDifference returns the distinct pairs present on exactly one
// side, ignoring multiplicity. Pairs of m come first, then those of other.
func (m *Multiset) SymmetricKeyDifference(other *Multiset) []Pair {
	var out []Pair
	for _, p := range m.order {
		if !other.Contains(p) {
			out = append(out, p)
		}
	}
	for _, p := range other.order {
		if !m.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}
