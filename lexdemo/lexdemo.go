/*
Package lexdemo wires github.com/timtadh/lexmachine into a source of
token.Token streams, for driving the parser from raw text instead of a
hand-written token file. It is an adapter in the same spirit as
lr/scanner/lexmach: one DFA scan over the whole input, errors logged and
skipped rather than fatal, end-of-input represented by token.End().

The demo grammar matches spec.md §8's running example:

	S' -> E
	E  -> E + T | T
	T  -> id

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lexdemo

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/corvidlang/lr1/token"
)

// tracer traces with key 'lr1.lexdemo'.
func tracer() tracing.Trace {
	return tracing.Select("lr1.lexdemo")
}

// Lexer scans arithmetic-expression source text into a token.Token stream
// for the spec.md §8 demo grammar.
type Lexer struct {
	lexer   *lexmachine.Lexer
	classOf map[int]string
}

// ids assigns lexmachine's integer token ids, in the order its API expects;
// classOf reverses that assignment back to the grammar's terminal classes.
const (
	idAdd = iota
	idIdentifiers
	idConstants
)

// NewLexer builds and compiles the demo DFA. The '+' literal and
// identifier pattern map directly onto the grammar's 'add' and
// 'identifiers' terminal classes.
func NewLexer() (*Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`\+`), makeToken(idAdd))
	lx.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(idIdentifiers))
	lx.Add([]byte(`[0-9]+`), makeToken(idConstants))
	lx.Add([]byte(`( |\t|\n)`), skip)
	if err := lx.Compile(); err != nil {
		tracer().Errorf("error compiling demo DFA: %v", err)
		return nil, err
	}
	return &Lexer{
		lexer: lx,
		classOf: map[int]string{
			idAdd:         "add",
			idIdentifiers: "identifiers",
			idConstants:   "constants",
		},
	}, nil
}

// Tokens scans input to completion and returns the resulting token stream,
// with token.End() appended as the distinguished terminator (spec.md §3).
// Unconsumable input is logged and skipped rather than treated as fatal,
// matching lr/scanner/lexmach's recovery behavior.
func (l *Lexer) Tokens(input string) ([]token.Token, error) {
	scan, err := l.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var out []token.Token
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			tracer().Errorf("scanner error: %v", err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				scan.TC = ui.FailTC
				continue
			}
			return nil, err
		}
		if eof {
			break
		}
		lt := tok.(*lexmachine.Token)
		name, ok := l.classOf[lt.Type]
		if !ok {
			name = fmt.Sprintf("%d", lt.Type)
		}
		out = append(out, token.Token{
			Line:   lt.StartLine,
			Column: lt.StartColumn,
			Class:  token.Class(name),
			Word:   string(lt.Lexeme),
		})
	}
	out = append(out, token.End())
	return out, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, nil
}
