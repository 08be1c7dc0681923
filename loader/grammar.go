/*
Package loader implements the external interfaces spec.md §6 specifies but
treats as peripheral: JSON grammar/message files, token-stream text, and
thin wrappers around the sparse table files package lr already knows how to
read/write. Nothing in this package is part of the combinatorial core —
it only turns bytes into the grammar/token/message types that core
operates on.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/corvidlang/lr1/grammar"
)

// grammarFile mirrors the JSON shape spec.md §6 specifies: a "formulas"
// array of "LHS -> RHS" strings, the first of which is the augmented start
// production.
type grammarFile struct {
	Formulas []string `json:"formulas"`
}

// LoadGrammar reads a grammar.json document and parses its formulas into a
// grammar.Store. Any malformed JSON or production is a grammar.LoadError,
// aborting the build (spec.md §7, GrammarLoadError).
func LoadGrammar(r io.Reader) (*grammar.Store, error) {
	var gf grammarFile
	dec := json.NewDecoder(r)
	if err := dec.Decode(&gf); err != nil {
		return nil, &grammar.LoadError{Msg: fmt.Sprintf("malformed grammar JSON: %v", err)}
	}
	if len(gf.Formulas) == 0 {
		return nil, &grammar.LoadError{Msg: "grammar JSON has no formulas"}
	}
	return grammar.ParseFormulas(gf.Formulas)
}
