package lr

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/lr/sparse"
	"github.com/corvidlang/lr1/token"
)

// LoadError reports a malformed persisted table (a line that doesn't parse,
// or an ACTION value tag other than accept/S<n>/R<n>) — spec.md §7's
// TableLoadError.
type LoadError struct {
	Line string
	Msg  string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("table load error: %s (line %q)", e.Msg, e.Line)
}

// symbolIndex interns nonterminal names to small contiguous ints so GOTO
// can be backed by sparse.IntMatrix, as spec.md §9's design notes suggest
// for "large grammars": "reindex terminal patterns to contiguous small
// integers". Deterministic: symbols are interned in sorted-name order, so
// two independent builds over the same grammar produce the same mapping.
type symbolIndex struct {
	toID   map[grammar.Symbol]int
	toName []grammar.Symbol
}

func newSymbolIndex(store *grammar.Store) *symbolIndex {
	syms := append([]grammar.Symbol(nil), store.Symbols()...)
	slices.Sort(syms)
	idx := &symbolIndex{toID: make(map[grammar.Symbol]int, len(syms)), toName: syms}
	for i, s := range syms {
		idx.toID[s] = i
	}
	return idx
}

// SaveGoto writes the GOTO table as sparse text: one "row col value" line
// per populated cell, row = state id, col = nonterminal name, value = the
// target state id.
func SaveGoto(store *grammar.Store, tb *Tables, w io.Writer) error {
	cells := tb.GotoCells()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].State != cells[j].State {
			return cells[i].State < cells[j].State
		}
		return cells[i].Symbol < cells[j].Symbol
	})
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		if _, err := fmt.Fprintf(bw, "%d %s %d\n", c.State, c.Symbol, c.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveAction writes the ACTION table as sparse text: one "row col value"
// line per populated cell, row = state id, col = token.String() ("no
// whitespace inside fields" per spec.md §4.8), value = "accept"/"S<n>"/
// "R<n>".
func SaveAction(tb *Tables, w io.Writer) error {
	cells := tb.ActionCells()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].State != cells[j].State {
			return cells[i].State < cells[j].State
		}
		return cells[i].Token.Key() < cells[j].Token.Key()
	})
	bw := bufio.NewWriter(w)
	for _, c := range cells {
		if _, err := fmt.Fprintf(bw, "%d %s %s\n", c.State, c.Token.String(), c.Value.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadedTables is a Tables reconstructed from disk. It supports the same
// Action/Goto queries as a freshly built Tables.
type LoadedTables = Tables

// LoadAction reads a sparse ACTION-table text stream written by SaveAction.
func LoadAction(r io.Reader) (*Tables, error) {
	tb := &Tables{
		action:    make(map[actionCell]Action),
		actionTok: make(map[actionCell]token.Token),
		goTo:      make(map[gotoCell]StateID),
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, &LoadError{Line: line, Msg: "expected 'row col value'"}
		}
		state, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &LoadError{Line: line, Msg: "bad state id"}
		}
		t, err := grammar.ParseTerminal(fields[1])
		if err != nil {
			return nil, &LoadError{Line: line, Msg: "bad token: " + err.Error()}
		}
		action, err := parseActionValue(fields[2])
		if err != nil {
			return nil, &LoadError{Line: line, Msg: err.Error()}
		}
		key := actionCell{StateID(state), t.Key()}
		tb.action[key] = action
		tb.actionTok[key] = t
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tb, nil
}

// LoadGoto reads a sparse GOTO-table text stream written by SaveGoto and
// merges it into tb (tb must already hold the ACTION table loaded from the
// matching file — spec.md treats ACTION and GOTO as one logical table set
// produced by one build).
func LoadGoto(tb *Tables, r io.Reader) error {
	if tb.goTo == nil {
		tb.goTo = make(map[gotoCell]StateID)
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return &LoadError{Line: line, Msg: "expected 'row col value'"}
		}
		state, err := strconv.Atoi(fields[0])
		if err != nil {
			return &LoadError{Line: line, Msg: "bad state id"}
		}
		to, err := strconv.Atoi(fields[2])
		if err != nil {
			return &LoadError{Line: line, Msg: "bad target state id"}
		}
		tb.goTo[gotoCell{StateID(state), grammar.Symbol(fields[1])}] = StateID(to)
	}
	return sc.Err()
}

func parseActionValue(s string) (Action, error) {
	if s == "accept" {
		return Action{Kind: Accept}, nil
	}
	if len(s) < 2 {
		return Action{}, fmt.Errorf("unknown action value %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return Action{}, fmt.Errorf("unknown action value %q", s)
	}
	switch s[0] {
	case 'S':
		return Action{Kind: Shift, State: StateID(n)}, nil
	case 'R':
		return Action{Kind: Reduce, Rule: n}, nil
	default:
		return Action{}, fmt.Errorf("unknown action value %q", s)
	}
}

// GotoMatrix builds a sparse.IntMatrix snapshot of the GOTO table, backed
// by interned symbol ids — a dense-ish view for debug tools that want
// row/column iteration rather than map iteration (e.g. reporting table
// density, or dumping a human-readable state x symbol grid). symbols[j]
// names the column interned to id j.
func GotoMatrix(store *grammar.Store, tb *Tables, states int) (m *sparse.IntMatrix, symbols []grammar.Symbol) {
	idx := newSymbolIndex(store)
	m = sparse.NewIntMatrix(states, len(idx.toName), sparse.DefaultNullValue)
	for _, c := range tb.GotoCells() {
		m.Set(int(c.State), idx.toID[c.Symbol], int32(c.Value))
	}
	return m, idx.toName
}
