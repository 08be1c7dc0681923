package lr

import (
	"bytes"
	"testing"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/observer"
	"github.com/corvidlang/lr1/token"
)

// exprGrammar builds the spec.md §8 running example:
//
//	S' -> E
//	E  -> E <add,+> T
//	E  -> T
//	T  -> <identifiers,>
func exprGrammar(t *testing.T) *grammar.Store {
	t.Helper()
	lines := []string{
		"S' -> E",
		"E -> E <add,+> T",
		"E -> T",
		"T -> <identifiers,>",
	}
	store, err := grammar.ParseFormulas(lines)
	if err != nil {
		t.Fatalf("ParseFormulas: %v", err)
	}
	return store
}

func startItemSet(t *testing.T, store *grammar.Store) ItemSet {
	t.Helper()
	idx, _ := store.Index(store.Start())
	return Closure(store, NewItemSet(NewItem(idx, store.Start(), token.End())))
}

// Closure must be idempotent: closing an already-closed set changes nothing.
func TestClosureIdempotent(t *testing.T) {
	store := exprGrammar(t)
	s0 := startItemSet(t, store)
	s1 := Closure(store, s0)
	if !s0.Equal(s1) {
		t.Errorf("Closure is not idempotent: %v != %v", s0.Items(), s1.Items())
	}
}

// Closure must be monotonic: the closure of a seed set is a superset of it.
func TestClosureMonotonic(t *testing.T) {
	store := exprGrammar(t)
	idx, _ := store.Index(store.Start())
	seed := NewItemSet(NewItem(idx, store.Start(), token.End()))
	closed := Closure(store, seed)
	if closed.Size() < seed.Size() {
		t.Fatalf("Closure shrank the seed set: %d < %d", closed.Size(), seed.Size())
	}
	for _, it := range seed.Items() {
		if !closed.set.Contains(it) {
			t.Errorf("closure dropped seed item %v", it)
		}
	}
}

// Goto(Closure(...)) composed with Closure again must be consistent: the
// target of 'E' from state 0 in the classic expr grammar is its own
// well-known item set (dot after E, augmented item complete-equivalent,
// plus the E -> E . + T item).
func TestGotoComposition(t *testing.T) {
	store := exprGrammar(t)
	s0 := startItemSet(t, store)
	onE := Closure(store, Goto(s0, grammar.Nonterminal("E")))
	if onE.Size() == 0 {
		t.Fatalf("GOTO(s0, E) is empty, expected at least the augmented item and E -> E . + T")
	}
	foundAugmented := false
	for _, it := range onE.Items() {
		if it.FormulaIdx == 0 && it.Dot == 1 {
			foundAugmented = true
		}
	}
	if !foundAugmented {
		t.Errorf("expected S' -> E . in GOTO(s0, E), got %v", onE.Items())
	}
}

// State enumeration must be deterministic: two independent builds over the
// same store produce identical state counts, transition counts, and table
// digests.
func TestEnumerateAndBuildDeterministic(t *testing.T) {
	store := exprGrammar(t)
	s1 := Enumerate(store, nil)
	t1 := Build(store, s1, nil)
	s2 := Enumerate(store, nil)
	t2 := Build(store, s2, nil)

	if s1.Len() != s2.Len() {
		t.Fatalf("state counts differ across builds: %d != %d", s1.Len(), s2.Len())
	}
	if len(s1.Transitions) != len(s2.Transitions) {
		t.Fatalf("transition counts differ across builds: %d != %d", len(s1.Transitions), len(s2.Transitions))
	}
	if t1.Digest() != t2.Digest() {
		t.Errorf("table digests differ across builds: %s != %s", t1.Digest(), t2.Digest())
	}
}

// Two tokens in the same equivalence class must hit the same ACTION cell.
func TestActionLookupByTokenEquivalence(t *testing.T) {
	store := exprGrammar(t)
	states := Enumerate(store, nil)
	tables := Build(store, states, nil)

	a := token.Token{Class: token.ClassIdentifiers, Word: "foo"}
	b := token.Token{Class: token.ClassIdentifiers, Word: "bar"}
	act1, ok1 := tables.Action(0, a)
	act2, ok2 := tables.Action(0, b)
	if !ok1 || !ok2 {
		t.Fatalf("expected ACTION[0, identifiers] to be populated")
	}
	if act1 != act2 {
		t.Errorf("identifiers tokens with different words hit different ACTION cells: %v != %v", act1, act2)
	}
}

// A deliberately ambiguous grammar (dangling-else-style: two ways to derive
// the same prefix) must report a conflict through the observer rather than
// silently overwriting, and the first write must win.
func TestBuildReportsConflictsFirstWriteWins(t *testing.T) {
	lines := []string{
		"S' -> S",
		"S -> <if,> S",
		"S -> <if,> S <else,>",
		"S -> <id,>",
	}
	store, err := grammar.ParseFormulas(lines)
	if err != nil {
		t.Fatalf("ParseFormulas: %v", err)
	}
	states := Enumerate(store, nil)
	collector := observer.NewCollector()
	tables := Build(store, states, collector)
	if len(collector.Conflicts) == 0 {
		t.Fatalf("expected at least one conflict for the dangling-else-style grammar")
	}
	if tables == nil {
		t.Fatalf("Build must still return usable tables when conflicts occur")
	}
	for _, c := range collector.Conflicts {
		if c.Table != "ACTION" {
			continue
		}
		tok, err := grammar.ParseTerminal(c.Col)
		if err != nil {
			t.Fatalf("conflict column %q is not a terminal pattern: %v", c.Col, err)
		}
		got, ok := tables.Action(StateID(c.Row), tok)
		if !ok || got.String() != c.OldValue {
			t.Errorf("ACTION[%d, %s] = (%v, %v), want first-written %s", c.Row, c.Col, got, ok, c.OldValue)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := exprGrammar(t)
	states := Enumerate(store, nil)
	tables := Build(store, states, nil)

	var actionBuf, gotoBuf bytes.Buffer
	if err := SaveAction(tables, &actionBuf); err != nil {
		t.Fatalf("SaveAction: %v", err)
	}
	if err := SaveGoto(store, tables, &gotoBuf); err != nil {
		t.Fatalf("SaveGoto: %v", err)
	}

	loaded, err := LoadAction(&actionBuf)
	if err != nil {
		t.Fatalf("LoadAction: %v", err)
	}
	if err := LoadGoto(loaded, &gotoBuf); err != nil {
		t.Fatalf("LoadGoto: %v", err)
	}

	for _, cell := range tables.ActionCells() {
		got, ok := loaded.Action(cell.State, cell.Token)
		if !ok || got != cell.Value {
			t.Errorf("round-tripped ACTION[%d, %v] = (%v, %v), want (%v, true)", cell.State, cell.Token, got, ok, cell.Value)
		}
	}
	for _, cell := range tables.GotoCells() {
		got, ok := loaded.Goto(cell.State, cell.Symbol)
		if !ok || got != cell.Value {
			t.Errorf("round-tripped GOTO[%d, %s] = (%v, %v), want (%v, true)", cell.State, cell.Symbol, got, ok, cell.Value)
		}
	}
}
