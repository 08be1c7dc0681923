package grammar

import "strings"

// Formula is a single production LHS -> RHS. RHS may not be empty:
// epsilon-productions are out of scope (spec.md §9, open question 2).
type Formula struct {
	LHS Symbol
	RHS []Element
}

// String renders a formula as "LHS -> E1 E2 ... En".
func (f Formula) String() string {
	parts := make([]string, len(f.RHS))
	for i, e := range f.RHS {
		parts[i] = e.String()
	}
	return string(f.LHS) + " -> " + strings.Join(parts, " ")
}

// Store is an ordered list of formulas plus a LHS -> formula-indices index.
// The first formula (index 0) is the augmented start production. Stable
// after construction; Store is immutable once returned by NewStore.
type Store struct {
	formulas []Formula
	byLHS    map[Symbol][]int
}

// NewStore builds a FormulaStore from an ordered formula list. formulas[0]
// is treated as the augmented start production.
func NewStore(formulas []Formula) *Store {
	s := &Store{
		formulas: formulas,
		byLHS:    make(map[Symbol][]int, len(formulas)),
	}
	for i, f := range formulas {
		s.byLHS[f.LHS] = append(s.byLHS[f.LHS], i)
	}
	return s
}

// Len returns the number of formulas in the store.
func (s *Store) Len() int { return len(s.formulas) }

// Formula returns the formula at the given stable index (its reduce-action
// number).
func (s *Store) Formula(index int) Formula { return s.formulas[index] }

// Index returns the stable ordinal of f, used as the reduce-action payload.
// Formulas are compared by value (LHS + RHS element equality).
func (s *Store) Index(f Formula) (int, bool) {
	for i, g := range s.formulas {
		if formulaEqual(f, g) {
			return i, true
		}
	}
	return -1, false
}

// Start returns the first-inserted (augmented) formula.
func (s *Store) Start() Formula { return s.formulas[0] }

// ProductionsOf returns every formula whose LHS is symbol, in insertion
// order.
func (s *Store) ProductionsOf(symbol Symbol) []Formula {
	idxs := s.byLHS[symbol]
	out := make([]Formula, len(idxs))
	for i, idx := range idxs {
		out[i] = s.formulas[idx]
	}
	return out
}

// Symbols returns every distinct nonterminal that appears as a LHS, in
// first-seen order.
func (s *Store) Symbols() []Symbol {
	seen := make(map[Symbol]bool, len(s.byLHS))
	out := make([]Symbol, 0, len(s.byLHS))
	for _, f := range s.formulas {
		if !seen[f.LHS] {
			seen[f.LHS] = true
			out = append(out, f.LHS)
		}
	}
	return out
}

func formulaEqual(a, b Formula) bool {
	if a.LHS != b.LHS || len(a.RHS) != len(b.RHS) {
		return false
	}
	for i := range a.RHS {
		if !a.RHS[i].Equal(b.RHS[i]) {
			return false
		}
	}
	return true
}
