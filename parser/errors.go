/*
Package parser implements the table-driven shift/reduce driver: a stack
machine consuming a token stream against ACTION/GOTO tables built by
package lr, with panic-mode error recovery (spec.md §4.7).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package parser

import (
	"fmt"

	"github.com/corvidlang/lr1/token"
)

// SyntaxError is one parse-time error: a missing ACTION or missing GOTO
// entry encountered at a given token (spec.md §4.7, §7).
type SyntaxError struct {
	Token   token.Token
	Message string
}

// String renders a SyntaxError the way spec.md §4.7 prescribes:
// "Error at <line>:<column> `<word>`: <message>".
func (e SyntaxError) String() string {
	return fmt.Sprintf("Error at %d:%d `%s`: %s", e.Token.Line, e.Token.Column, e.Token.Word, e.Message)
}

func (e SyntaxError) Error() string { return e.String() }

// Messages looks up a human-readable message for a token pattern, under
// token equivalence, falling back to a default when no specific message is
// registered (spec.md §6, message.json).
type Messages struct {
	specific map[string]string
	fallback string
}

// NewMessages builds a Messages table from per-pattern entries and a
// fallback used when no entry matches.
func NewMessages(entries map[token.Token]string, fallback string) *Messages {
	m := &Messages{specific: make(map[string]string, len(entries)), fallback: fallback}
	for t, msg := range entries {
		m.specific[t.Key()] = msg
	}
	return m
}

// For returns the message registered for t's equivalence class, or the
// fallback if none is registered.
func (m *Messages) For(t token.Token) string {
	if m == nil {
		return "unexpected token"
	}
	if msg, ok := m.specific[t.Key()]; ok {
		return msg
	}
	return m.fallback
}
