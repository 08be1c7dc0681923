package parser

import (
	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/lr"
	"github.com/corvidlang/lr1/token"
)

// Parser is a table-driven shift/reduce stack machine (spec.md §4.7). It
// holds no per-parse state between calls to Parse; status_stack,
// symbol_stack, the cursor and the error list all live only for the
// duration of one Parse call, matching spec.md §5's lifecycle note.
type Parser struct {
	store    *grammar.Store
	tables   *lr.Tables
	messages *Messages
}

// New creates a Parser from a built formula store, its ACTION/GOTO tables,
// and an (optional, may be nil) error-message table.
func New(store *grammar.Store, tables *lr.Tables, messages *Messages) *Parser {
	return &Parser{store: store, tables: tables, messages: messages}
}

// Parse drives tokens (which must be terminated by a token.End() sentinel)
// through the ACTION/GOTO tables, returning every SyntaxError encountered,
// in the order their offending tokens were seen (spec.md §5 ordering
// guarantee). An empty result means the input was accepted.
func (p *Parser) Parse(tokens []token.Token) []SyntaxError {
	statusStack := []lr.StateID{0}
	symbolStack := []grammar.Element{grammar.Terminal(token.Token{})}

	var errs []SyntaxError
	i := 0
	done := false

	for !done && i < len(tokens) {
		s := statusStack[len(statusStack)-1]
		t := tokens[i]
		action, ok := p.tables.Action(s, t)

		if !ok {
			errs = append(errs, SyntaxError{Token: t, Message: p.messages.For(t)})
			i++
			for i < len(tokens) {
				if _, ok := p.tables.Action(statusStack[len(statusStack)-1], tokens[i]); ok {
					break
				}
				i++
			}
			if i >= len(tokens) {
				done = true
			}
			continue
		}

		switch action.Kind {
		case lr.Accept:
			done = true

		case lr.Shift:
			symbolStack = append(symbolStack, grammar.Terminal(t))
			statusStack = append(statusStack, action.State)
			i++

		case lr.Reduce:
			formula := p.store.Formula(action.Rule)
			n := len(formula.RHS)
			statusStack = statusStack[:len(statusStack)-n]
			symbolStack = symbolStack[:len(symbolStack)-n]
			symbolStack = append(symbolStack, grammar.Nonterminal(formula.LHS))

			top := statusStack[len(statusStack)-1]
			g, ok := p.tables.Goto(top, formula.LHS)
			if !ok {
				errs = append(errs, SyntaxError{Token: t, Message: p.messages.For(t)})
				done = true
				continue
			}
			statusStack = append(statusStack, g)
		}
	}

	return errs
}
