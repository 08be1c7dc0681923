package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/parser"
	"github.com/corvidlang/lr1/token"
)

// messageEntry is one {token, message} pair from message.json.
type messageEntry struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// messageFile mirrors spec.md §6's message.json shape: a "messages" array
// plus a "defaults" (or legacy "default") fallback string.
type messageFile struct {
	Messages []messageEntry `json:"messages"`
	Defaults string         `json:"defaults"`
	Default  string         `json:"default"`
}

// LoadMessages reads a message.json document into a parser.Messages table.
// Lookup inside the resulting table uses terminal equivalence, exactly as
// ACTION-table lookup does.
func LoadMessages(r io.Reader) (*parser.Messages, error) {
	var mf messageFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("malformed message JSON: %w", err)
	}
	fallback := mf.Defaults
	if fallback == "" {
		fallback = mf.Default
	}
	entries := make(map[token.Token]string, len(mf.Messages))
	for _, e := range mf.Messages {
		t, err := grammar.ParseTerminal(e.Token)
		if err != nil {
			return nil, fmt.Errorf("bad message token pattern %q: %w", e.Token, err)
		}
		entries[t] = e.Message
	}
	return parser.NewMessages(entries, fallback), nil
}
