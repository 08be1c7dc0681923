package grammar

import (
	"testing"

	"github.com/corvidlang/lr1/token"
)

func exprGrammar(t *testing.T) *Store {
	t.Helper()
	lines := []string{
		"S' -> E",
		"E -> E <add,+> T",
		"E -> T",
		"T -> <identifiers,>",
	}
	store, err := ParseFormulas(lines)
	if err != nil {
		t.Fatalf("ParseFormulas: %v", err)
	}
	return store
}

func TestParseFormulaRejectsEmptyRHS(t *testing.T) {
	if _, err := ParseFormula("E ->"); err == nil {
		t.Errorf("expected an error for an empty RHS (epsilon is unsupported)")
	}
}

func TestParseFormulaRejectsMissingArrow(t *testing.T) {
	if _, err := ParseFormula("E T"); err == nil {
		t.Errorf("expected an error for a formula missing '->'")
	}
}

func TestParseFormulasRejectsStartSymbolRecurrence(t *testing.T) {
	lines := []string{
		"S' -> E",
		"E -> S' T",
	}
	if _, err := ParseFormulas(lines); err == nil {
		t.Errorf("expected an error when the start symbol reappears on a RHS")
	}
}

func TestParseTerminal(t *testing.T) {
	tok, err := ParseTerminal("<add,+>")
	if err != nil {
		t.Fatalf("ParseTerminal: %v", err)
	}
	if tok.Class != "add" || tok.Word != "+" {
		t.Errorf("got %v, want class=add word=+", tok)
	}
}

func TestStoreIndexAndFormula(t *testing.T) {
	store := exprGrammar(t)
	if store.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", store.Len())
	}
	f := store.Formula(2)
	idx, ok := store.Index(f)
	if !ok || idx != 2 {
		t.Errorf("Index(Formula(2)) = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestStoreProductionsOf(t *testing.T) {
	store := exprGrammar(t)
	prods := store.ProductionsOf("E")
	if len(prods) != 2 {
		t.Fatalf("ProductionsOf(E) returned %d formulas, want 2", len(prods))
	}
}

// FIRST must terminate even over left-recursive productions (E -> E + T),
// and must flow through to a terminal's token pattern.
func TestFirstTerminatesOnLeftRecursion(t *testing.T) {
	store := exprGrammar(t)
	first := First(store, Nonterminal("E"))
	if len(first) != 1 {
		t.Fatalf("First(E) = %v, want exactly the identifiers terminal", first)
	}
	for _, tok := range first {
		if tok.Class != token.ClassIdentifiers {
			t.Errorf("First(E) contains %v, want identifiers", tok)
		}
	}
}

func TestFirstOfTerminalIsItself(t *testing.T) {
	store := exprGrammar(t)
	el := Terminal(token.Token{Class: "add", Word: "+"})
	first := First(store, el)
	if len(first) != 1 {
		t.Fatalf("First(terminal) = %v, want exactly itself", first)
	}
}

func TestFirstOfSequenceFallsBackToLookahead(t *testing.T) {
	store := exprGrammar(t)
	la := token.End()
	first := FirstOfSequence(store, nil, 0, la)
	if len(first) != 1 {
		t.Fatalf("FirstOfSequence(empty suffix) = %v, want {lookahead}", first)
	}
	if _, ok := first[la.Key()]; !ok {
		t.Errorf("expected lookahead %v in result", la)
	}
}

func TestElementEqualityByEquivalence(t *testing.T) {
	a := Terminal(token.Token{Class: token.ClassIdentifiers, Word: "x"})
	b := Terminal(token.Token{Class: token.ClassIdentifiers, Word: "y"})
	if !a.Equal(b) {
		t.Errorf("expected identifiers terminals to compare equal regardless of word")
	}
	if a.Equal(Nonterminal("x")) {
		t.Errorf("a terminal must never equal a nonterminal")
	}
}
