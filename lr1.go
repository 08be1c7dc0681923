/*
Package lr1 ties the module's pieces together into the two operations
spec.md's overview describes as the system's data flow:

	Build:  Grammar JSON -> grammar.Store -> lr.States -> lr.Tables -> disk
	Parse:  Token stream + loaded tables -> parser.Parser -> []SyntaxError

This package provides the Build side as one call (state enumeration plus
table synthesis; writing to disk is loader.SaveTables). The Parse side has
no wrapper here: it is parser.New(...).Parse. Clients that want finer
control use the grammar/lr/parser/loader/observer packages directly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package lr1

import (
	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/lr"
	"github.com/corvidlang/lr1/observer"
)

// Build runs the full generator pipeline over a formula store: canonical
// LR(1) state enumeration followed by ACTION/GOTO synthesis (spec.md §4.5,
// §4.6). obs receives every discovered state and every recorded conflict,
// in build order; pass nil to discard them.
func Build(store *grammar.Store, obs observer.BuildObserver) (*lr.States, *lr.Tables) {
	states := lr.Enumerate(store, obs)
	tables := lr.Build(store, states, obs)
	return states, tables
}
