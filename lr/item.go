/*
Package lr implements the combinatorial heart of LR(1) parser-table
construction: items, item-set closure and goto, canonical state
enumeration, and ACTION/GOTO table synthesis (spec.md §4.4–§4.6). Grammar
data (symbols, formulas, FIRST) is supplied by package grammar; this package
never parses grammar text itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lr

import (
	"fmt"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/token"
)

// Item is an LR(1) item (production, dot position, 1-token lookahead):
// the parser has matched formula.RHS[0:Dot) and, once the dot reaches the
// end, will reduce by Formula when the next input token is Equiv to
// Lookahead.
type Item struct {
	Formula    grammar.Formula
	FormulaIdx int // stable index into the originating Store
	Dot        int
	Lookahead  token.Token
}

// NewItem builds an item with the dot at position 0.
func NewItem(idx int, f grammar.Formula, lookahead token.Token) Item {
	return Item{Formula: f, FormulaIdx: idx, Dot: 0, Lookahead: lookahead}
}

// Current returns formula.RHS[Dot], or ok=false if the item is complete.
func (it Item) Current() (grammar.Element, bool) {
	if it.Dot >= len(it.Formula.RHS) {
		return grammar.Element{}, false
	}
	return it.Formula.RHS[it.Dot], true
}

// After returns formula.RHS[Dot+1], or ok=false if there is no such slot.
func (it Item) After() (grammar.Element, bool) {
	if it.Dot+1 >= len(it.Formula.RHS) {
		return grammar.Element{}, false
	}
	return it.Formula.RHS[it.Dot+1], true
}

// Complete reports whether the dot has reached the end of the RHS.
func (it Item) Complete() bool {
	return it.Dot >= len(it.Formula.RHS)
}

// Advance returns a new item with the dot moved one slot to the right, same
// lookahead.
func (it Item) Advance() Item {
	return Item{Formula: it.Formula, FormulaIdx: it.FormulaIdx, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Key implements iteratable.Keyed: two items are equal iff their formula,
// dot position, and lookahead (under token equivalence) all match.
func (it Item) Key() string {
	return fmt.Sprintf("%d|%d|%s", it.FormulaIdx, it.Dot, it.Lookahead.Key())
}

// String renders an item as "LHS -> X1 X2 · X3, lookahead".
func (it Item) String() string {
	out := string(it.Formula.LHS) + " ->"
	for i, e := range it.Formula.RHS {
		if i == it.Dot {
			out += " ·"
		}
		out += " " + e.String()
	}
	if it.Dot == len(it.Formula.RHS) {
		out += " ·"
	}
	return out + ", " + it.Lookahead.String()
}
