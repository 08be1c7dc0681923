/*
Package iteratable implements a destructive, hashable set container
suitable for the worklist-style algorithms that dominate LR(1) construction
(closure, state enumeration): start with a seed set, repeatedly grow it, and
stop when an iteration pass adds nothing new.

Values stored in a Set must implement Keyed so membership can be tested in
O(1) rather than by linear scan — generic closure/goto algorithms over
possibly-large item sets would otherwise be quadratic.

Unusually, most operations are destructive (Union/Add mutate the receiver in
place) — this mirrors the "iteratable.Set" this package generalizes from,
which is documented as destructive-by-design for exactly this class of
algorithm.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package iteratable

// Keyed is implemented by values stored in a Set. Key must be stable and
// distinguish values exactly as their intended equality does.
type Keyed interface {
	Key() string
}

// Set is a destructive, order-preserving, hashable collection of Keyed
// values. The zero value is not usable; use New.
type Set struct {
	order []Keyed
	index map[string]int // key -> position in order

	// iteration cursor and snapshot length, set by IterateOnce
	cursor  int
	limit   int
	started bool
}

// New creates an empty Set.
func New() *Set {
	return &Set{index: make(map[string]int)}
}

// Add inserts v if not already present (by Key). Returns true if it was
// newly added.
func (s *Set) Add(v Keyed) bool {
	k := v.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.order)
	s.order = append(s.order, v)
	return true
}

// Contains reports whether a value with v's Key is already in the set.
func (s *Set) Contains(v Keyed) bool {
	_, ok := s.index[v.Key()]
	return ok
}

// Size returns the number of elements in the set.
func (s *Set) Size() int { return len(s.order) }

// Values returns the set's elements in insertion order. The returned slice
// must not be mutated.
func (s *Set) Values() []Keyed { return s.order }

// Copy returns a shallow, independent copy of s.
func (s *Set) Copy() *Set {
	c := &Set{
		order: append([]Keyed(nil), s.order...),
		index: make(map[string]int, len(s.index)),
	}
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}

// Union destructively adds every element of other not already in s. Returns
// true if s grew.
func (s *Set) Union(other *Set) bool {
	grew := false
	for _, v := range other.order {
		if s.Add(v) {
			grew = true
		}
	}
	return grew
}

// Difference returns the elements of s not present in other, as a new Set.
func (s *Set) Difference(other *Set) *Set {
	d := New()
	for _, v := range s.order {
		if !other.Contains(v) {
			d.Add(v)
		}
	}
	return d
}

// Equals reports whether s and other contain exactly the same elements
// (order-independent), which is the equality ItemSet-as-map-key relies on.
func (s *Set) Equals(other *Set) bool {
	if len(s.index) != len(other.index) {
		return false
	}
	for k := range s.index {
		if _, ok := other.index[k]; !ok {
			return false
		}
	}
	return true
}

// Empty reports whether the set has no elements.
func (s *Set) Empty() bool { return len(s.order) == 0 }

// IterateOnce resets the iteration cursor to the start of the set's current
// contents, as captured at the time of the call. Subsequent Next()/Item()
// calls walk that snapshot even if the set is mutated mid-iteration — the
// worklist pattern in closure() relies on this to avoid iterating over
// elements added during the same pass.
func (s *Set) IterateOnce() {
	s.cursor = -1
	s.limit = len(s.order)
	s.started = true
}

// Next advances the iteration cursor. Returns false once exhausted.
func (s *Set) Next() bool {
	if !s.started {
		s.IterateOnce()
	}
	s.cursor++
	return s.cursor < s.limit
}

// Item returns the element at the current iteration cursor.
func (s *Set) Item() Keyed {
	return s.order[s.cursor]
}

// SortedKey lets a *Set itself be stored as an element of another container keyed
// by content — e.g. the state-enumerator's dedup map uses each ItemSet's
// sorted signature as its own Key.
func (s *Set) SortedKey() string {
	// Deterministic content signature independent of insertion order.
	keys := make([]string, 0, len(s.order))
	for _, v := range s.order {
		keys = append(keys, v.Key())
	}
	return sortedJoin(keys)
}

func sortedJoin(keys []string) string {
	// simple insertion sort; item sets in practice are small
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	out := ""
	for _, k := range keys {
		out += k + "\x1f"
	}
	return out
}
