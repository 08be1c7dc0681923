package lr

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/observer"
	"github.com/corvidlang/lr1/token"
)

// ActionKind tags the three possible ACTION table cell values.
type ActionKind int

const (
	// Shift pushes the current token and moves to a new state.
	Shift ActionKind = iota
	// Reduce pops |RHS| stack entries and applies a GOTO for the LHS.
	Reduce
	// Accept ends the parse successfully.
	Accept
)

// Action is one ACTION table cell value.
type Action struct {
	Kind  ActionKind
	State StateID // valid when Kind == Shift
	Rule  int     // formula index, valid when Kind == Reduce
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("S%d", a.State)
	case Reduce:
		return fmt.Sprintf("R%d", a.Rule)
	case Accept:
		return "accept"
	}
	return "?"
}

// actionCell and gotoCell are the map keys backing Tables; Go maps give us
// the "sparse map keyed by (StateID, pattern)" storage spec.md §9 calls
// out as the right choice for grammars of realistic size.
type actionCell struct {
	state StateID
	tok   string // token.Token.Key()
}

type gotoCell struct {
	state StateID
	sym   grammar.Symbol
}

// Tables holds the synthesized ACTION and GOTO tables for a grammar.
// Immutable once returned by Build.
type Tables struct {
	action map[actionCell]Action
	// actionTok remembers one representative Token per actionCell key,
	// so ACTION can be queried by any Equiv token, not just the exact one
	// originally inserted.
	actionTok map[actionCell]token.Token
	goTo      map[gotoCell]StateID
}

// Action looks up ACTION[state, t], keyed by token equivalence class.
func (tb *Tables) Action(state StateID, t token.Token) (Action, bool) {
	a, ok := tb.action[actionCell{state, t.Key()}]
	return a, ok
}

// Goto looks up GOTO[state, symbol].
func (tb *Tables) Goto(state StateID, sym grammar.Symbol) (StateID, bool) {
	s, ok := tb.goTo[gotoCell{state, sym}]
	return s, ok
}

// Digest returns a stable content hash of the tables, useful for detecting
// whether two independent builds produced identical tables (spec.md §8
// property 5, determinism) without comparing every cell by hand.
func (tb *Tables) Digest() string {
	type cell = struct {
		State StateID
		Key   string
		Value string
	}
	cells := make([]cell, 0, len(tb.action)+len(tb.goTo))
	for k, v := range tb.action {
		cells = append(cells, cell{k.state, "A:" + k.tok, v.String()})
	}
	for k, v := range tb.goTo {
		cells = append(cells, cell{k.state, "G:" + string(k.sym), fmt.Sprintf("%d", v)})
	}
	sortCells(cells)
	hash, err := structhash.Hash(cells, 1)
	if err != nil {
		return fmt.Sprintf("digest-error:%v", err)
	}
	return hash
}

func sortCells(cells []struct {
	State StateID
	Key   string
	Value string
}) {
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0; j-- {
			a, b := cells[j-1], cells[j]
			if a.State < b.State || (a.State == b.State && a.Key <= b.Key) {
				break
			}
			cells[j-1], cells[j] = cells[j], cells[j-1]
		}
	}
}

// Build runs the two-pass ACTION/GOTO synthesis over a canonical LR(1)
// collection (spec.md §4.6):
//
//  1. Transition pass: every (state, terminal) transition becomes a Shift;
//     every (state, nonterminal) transition becomes a GOTO entry.
//  2. Completion pass: every completed item in every state becomes either
//     Accept (for the start formula with end-of-input lookahead) or a
//     Reduce entry keyed by the item's lookahead.
//
// Conflicts (a second write to an already-occupied cell) are first-write-
// wins: the earlier value is kept, the attempted overwrite is discarded and
// reported to obs.
func Build(store *grammar.Store, states *States, obs observer.BuildObserver) *Tables {
	if obs == nil {
		obs = observer.Null{}
	}
	tb := &Tables{
		action:    make(map[actionCell]Action),
		actionTok: make(map[actionCell]token.Token),
		goTo:      make(map[gotoCell]StateID),
	}

	for _, tr := range states.Transitions {
		if tr.X.IsTerminal() {
			tb.setAction(tr.From, tr.X.Token(), Action{Kind: Shift, State: tr.To}, obs)
		} else {
			tb.setGoto(tr.From, tr.X.Symbol(), tr.To, obs)
		}
	}

	startIdx, _ := store.Index(store.Start())
	states.Each(func(sid StateID, is ItemSet) {
		for _, item := range is.Items() {
			if !item.Complete() {
				continue
			}
			if item.FormulaIdx == startIdx && item.Lookahead.IsEnd() {
				tb.setAction(sid, item.Lookahead, Action{Kind: Accept}, obs)
				continue
			}
			tb.setAction(sid, item.Lookahead, Action{Kind: Reduce, Rule: item.FormulaIdx}, obs)
		}
	})
	return tb
}

func (tb *Tables) setAction(state StateID, t token.Token, a Action, obs observer.BuildObserver) {
	key := actionCell{state, t.Key()}
	if old, ok := tb.action[key]; ok {
		obs.Conflict("ACTION", int(state), t.String(), old.String(), a.String())
		return
	}
	tb.action[key] = a
	tb.actionTok[key] = t
}

func (tb *Tables) setGoto(state StateID, sym grammar.Symbol, to StateID, obs observer.BuildObserver) {
	key := gotoCell{state, sym}
	if old, ok := tb.goTo[key]; ok {
		obs.Conflict("GOTO", int(state), string(sym), fmt.Sprintf("%d", old), fmt.Sprintf("%d", to))
		return
	}
	tb.goTo[key] = to
}

// ActionCells returns every populated ACTION cell, for table persistence
// and for debug dumps. Order is unspecified; callers that need a stable
// order should sort.
func (tb *Tables) ActionCells() []ActionCell {
	out := make([]ActionCell, 0, len(tb.action))
	for k, v := range tb.action {
		out = append(out, ActionCell{State: k.state, Token: tb.actionTok[k], Value: v})
	}
	return out
}

// ActionCell is one populated (state, token) -> Action entry.
type ActionCell struct {
	State StateID
	Token token.Token
	Value Action
}

// GotoCells returns every populated GOTO cell.
func (tb *Tables) GotoCells() []GotoCellEntry {
	out := make([]GotoCellEntry, 0, len(tb.goTo))
	for k, v := range tb.goTo {
		out = append(out, GotoCellEntry{State: k.state, Symbol: k.sym, Value: v})
	}
	return out
}

// GotoCellEntry is one populated (state, symbol) -> StateID entry.
type GotoCellEntry struct {
	State  StateID
	Symbol grammar.Symbol
	Value  StateID
}
