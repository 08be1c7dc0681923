package lr

import (
	"golang.org/x/exp/slices"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/lr/iteratable"
)

// ItemSet is an unordered collection of items, treated as a value: two
// ItemSets are equal iff they contain the same items (spec.md §3). It is
// the state-deduplication key used by the state enumerator.
type ItemSet struct {
	set *iteratable.Set
}

// NewItemSet builds an ItemSet from a seed slice of items.
func NewItemSet(items ...Item) ItemSet {
	s := iteratable.New()
	for _, it := range items {
		s.Add(it)
	}
	return ItemSet{set: s}
}

// Items returns the set's items. The returned slice must not be mutated.
func (is ItemSet) Items() []Item {
	vals := is.set.Values()
	out := make([]Item, len(vals))
	for i, v := range vals {
		out[i] = v.(Item)
	}
	return out
}

// Size returns the number of items in the set.
func (is ItemSet) Size() int { return is.set.Size() }

// Equal reports whether is and other contain exactly the same items.
func (is ItemSet) Equal(other ItemSet) bool {
	return is.set.Equals(other.set)
}

// Key returns a canonical content signature, used to dedup states in the
// enumerator's Map<ItemSet, StateID>.
func (is ItemSet) Key() string {
	return is.set.SortedKey()
}

// Closure computes the LR(1) closure of is (spec.md §4.4): a worklist
// algorithm that, for every item (A -> alpha . B beta, a) with B a
// nonterminal, adds (B -> . gamma, b) for every production B -> gamma and
// every b in FIRST(beta) (or {a} if beta is empty), iterating to a
// fixpoint. Termination follows because the item universe is finite.
func Closure(store *grammar.Store, is ItemSet) ItemSet {
	closure := is.set.Copy()
	buffer := is.set.Copy()

	for !buffer.Empty() {
		buffer.IterateOnce()
		next := iteratable.New()
		for buffer.Next() {
			item := buffer.Item().(Item)
			cur, ok := item.Current()
			if !ok || cur.IsTerminal() {
				continue
			}
			B := cur.Symbol()
			lookaheads := grammar.FirstOfSequence(store, item.Formula.RHS, item.Dot+1, item.Lookahead)
			for _, f := range store.ProductionsOf(B) {
				idx, _ := store.Index(f)
				for _, la := range lookaheads {
					cand := NewItem(idx, f, la)
					if !closure.Contains(cand) {
						next.Add(cand)
					}
				}
			}
		}
		if next.Empty() {
			break
		}
		closure.Union(next)
		buffer = next
	}
	return ItemSet{set: closure}
}

// Goto returns { item.Advance() | item in is, item.Current() == X }. It
// does not apply closure; callers compose Closure(Goto(is, X)).
func Goto(is ItemSet, x grammar.Element) ItemSet {
	out := iteratable.New()
	for _, v := range is.set.Values() {
		item := v.(Item)
		cur, ok := item.Current()
		if ok && cur.Equal(x) {
			out.Add(item.Advance())
		}
	}
	return ItemSet{set: out}
}

// TransitionElements returns the set of elements sitting right after the
// dot in some item of is — the set of symbols the state can transition on.
// The result is sorted by Key() so that callers iterating it get a
// deterministic order, per spec.md §5's requirement that StateID assignment
// be reproducible across independent builds.
func TransitionElements(is ItemSet) []grammar.Element {
	seen := make(map[string]grammar.Element)
	for _, v := range is.set.Values() {
		item := v.(Item)
		if cur, ok := item.Current(); ok {
			seen[cur.Key()] = cur
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]grammar.Element, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}
