package parser

import (
	"testing"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/lr"
	"github.com/corvidlang/lr1/token"
)

// buildExprParser wires the spec.md §8 running example end to end:
//
//	S' -> E
//	E  -> E <add,+> T
//	E  -> T
//	T  -> <identifiers,>
func buildExprParser(t *testing.T) *Parser {
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
	states := lr.Enumerate(store, nil)
	tables := lr.Build(store, states, nil)
	msgs := NewMessages(nil, "unexpected token")
	return New(store, tables, msgs)
}

func id(word string) token.Token {
	return token.Token{Class: token.ClassIdentifiers, Word: word}
}

func add() token.Token {
	return token.Token{Class: "add", Word: "+"}
}

func TestParseAcceptsSingleIdentifier(t *testing.T) {
	p := buildExprParser(t)
	errs := p.Parse([]token.Token{id("x"), token.End()})
	if len(errs) != 0 {
		t.Errorf("expected acceptance, got errors %v", errs)
	}
}

func TestParseAcceptsChainedSums(t *testing.T) {
	p := buildExprParser(t)
	errs := p.Parse([]token.Token{id("a"), add(), id("b"), add(), id("c"), token.End()})
	if len(errs) != 0 {
		t.Errorf("expected acceptance, got errors %v", errs)
	}
}

func TestParseRejectsTrailingOperator(t *testing.T) {
	p := buildExprParser(t)
	errs := p.Parse([]token.Token{id("a"), add(), token.End()})
	if len(errs) == 0 {
		t.Fatalf("expected a syntax error for a trailing '+'")
	}
}

func TestParseRecoversAndReportsEveryError(t *testing.T) {
	p := buildExprParser(t)
	// 'a + + b': one bogus extra '+' in the middle, recoverable by
	// discarding tokens until ACTION is again defined.
	errs := p.Parse([]token.Token{id("a"), add(), add(), id("b"), token.End()})
	if len(errs) != 1 {
		t.Fatalf("got %d syntax errors %v, want exactly 1 (the extra '+', then recovery to accept)", len(errs), errs)
	}
}

func TestParseReportsPositionAndMessage(t *testing.T) {
	p := buildExprParser(t)
	bad := token.Token{Line: 3, Column: 7, Class: "add", Word: "+"}
	errs := p.Parse([]token.Token{bad, token.End()})
	if len(errs) == 0 {
		t.Fatalf("expected a syntax error")
	}
	got := errs[0].String()
	want := "Error at 3:7 `+`: unexpected token"
	if got != want {
		t.Errorf("SyntaxError.String() = %q, want %q", got, want)
	}
}

func TestMessagesFallsBackToDefault(t *testing.T) {
	specific := map[token.Token]string{
		add(): "dangling operator",
	}
	m := NewMessages(specific, "syntax error")
	if got := m.For(add()); got != "dangling operator" {
		t.Errorf("For(add) = %q, want specific message", got)
	}
	if got := m.For(id("x")); got != "syntax error" {
		t.Errorf("For(unregistered) = %q, want fallback", got)
	}
}

func TestMessagesNilIsSafe(t *testing.T) {
	var m *Messages
	if got := m.For(id("x")); got == "" {
		t.Errorf("nil *Messages.For must return a usable default, got empty string")
	}
}
