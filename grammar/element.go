/*
Package grammar holds the grammar-side data model: symbols, mixed
terminal/nonterminal elements, productions ("formulas"), the indexed formula
store, and FIRST-set computation. It has no notion of LR items or parser
states — those live in package lr, one layer up.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

import "github.com/corvidlang/lr1/token"

// Symbol is a nonterminal name. Two Symbols are equal iff their names are.
type Symbol string

// Element is a single slot of a production's right-hand side: either a
// terminal (carrying a token pattern) or a nonterminal symbol. Exactly one
// of IsTerminal()/IsSymbol() is true for any constructed Element.
type Element struct {
	tok    token.Token
	sym    Symbol
	isTerm bool
}

// Terminal builds an Element wrapping a terminal pattern.
func Terminal(t token.Token) Element {
	return Element{tok: t, isTerm: true}
}

// Nonterminal builds an Element wrapping a nonterminal symbol.
func Nonterminal(s Symbol) Element {
	return Element{sym: s, isTerm: false}
}

// IsTerminal reports whether e wraps a terminal token pattern.
func (e Element) IsTerminal() bool { return e.isTerm }

// IsSymbol reports whether e wraps a nonterminal symbol.
func (e Element) IsSymbol() bool { return !e.isTerm }

// Token returns the wrapped token pattern. Only valid when IsTerminal().
func (e Element) Token() token.Token { return e.tok }

// Symbol returns the wrapped nonterminal. Only valid when IsSymbol().
func (e Element) Symbol() Symbol { return e.sym }

// Equal follows the underlying variant: two terminals compare by token
// equivalence, two nonterminals by symbol name, and terminal never equals
// nonterminal.
func (e Element) Equal(o Element) bool {
	if e.isTerm != o.isTerm {
		return false
	}
	if e.isTerm {
		return token.Equiv(e.tok, o.tok)
	}
	return e.sym == o.sym
}

// Key returns a comparable string such that two elements are Equal iff their
// Keys match. Used for deterministic iteration and map-keying.
func (e Element) Key() string {
	if e.isTerm {
		return "t:" + e.tok.Key()
	}
	return "n:" + string(e.sym)
}

// String renders an element the way it appears on a production's RHS.
func (e Element) String() string {
	if e.isTerm {
		return e.tok.String()
	}
	return string(e.sym)
}
