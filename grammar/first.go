package grammar

import "github.com/corvidlang/lr1/token"

// First computes FIRST(element): if element is a terminal, {element.Token};
// otherwise the union, over every production of element's symbol whose
// leftmost RHS element is not itself already being expanded, of
// First(production.RHS[0]).
//
// The excludes set grows monotonically with recursion depth bounded by the
// number of distinct nonterminals, so First terminates on any grammar,
// including left-recursive ones (spec.md §4.3, §8 property 1 and 6).
func First(store *Store, element Element) map[string]token.Token {
	return first(store, element, nil)
}

func first(store *Store, element Element, excludes map[Symbol]bool) map[string]token.Token {
	out := make(map[string]token.Token)
	if element.IsTerminal() {
		t := element.Token()
		out[t.Key()] = t
		return out
	}
	sym := element.Symbol()
	next := make(map[Symbol]bool, len(excludes)+1)
	for s := range excludes {
		next[s] = true
	}
	next[sym] = true
	for _, f := range store.ProductionsOf(sym) {
		lead := f.RHS[0]
		if lead.IsSymbol() && next[lead.Symbol()] {
			continue
		}
		for k, t := range first(store, lead, next) {
			out[k] = t
		}
	}
	return out
}

// FirstOfSequence computes FIRST of an RHS suffix rhs[from:]. If the suffix
// is empty (dot reached the end of the production) it falls back to the
// caller-supplied lookahead, matching the LR(1) closure rule in spec.md
// §4.4: "L = if β exists then first(β) else {a}". Because epsilon
// productions are unsupported, FIRST of a nonempty suffix only ever needs
// its leading element.
func FirstOfSequence(store *Store, rhs []Element, from int, lookahead token.Token) map[string]token.Token {
	if from >= len(rhs) {
		return map[string]token.Token{lookahead.Key(): lookahead}
	}
	return first(store, rhs[from], nil)
}
