package loader

import (
	"os"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/lr"
)

// SaveTables writes a built Tables to the given ACTION/GOTO file paths.
// File handles are scoped to this call and released on every exit path,
// including failure, per spec.md §5's resource policy.
func SaveTables(store *grammar.Store, tb *lr.Tables, actionPath, gotoPath string) error {
	af, err := os.Create(actionPath)
	if err != nil {
		return err
	}
	defer af.Close()
	if err := lr.SaveAction(tb, af); err != nil {
		return err
	}

	gf, err := os.Create(gotoPath)
	if err != nil {
		return err
	}
	defer gf.Close()
	return lr.SaveGoto(store, tb, gf)
}

// LoadTables reads ACTION/GOTO files written by SaveTables. A malformed
// line or unknown value tag surfaces as a *lr.LoadError and aborts parser
// initialization (spec.md §7, TableLoadError).
func LoadTables(actionPath, gotoPath string) (*lr.Tables, error) {
	af, err := os.Open(actionPath)
	if err != nil {
		return nil, err
	}
	defer af.Close()
	tb, err := lr.LoadAction(af)
	if err != nil {
		return nil, err
	}

	gf, err := os.Open(gotoPath)
	if err != nil {
		return nil, err
	}
	defer gf.Close()
	if err := lr.LoadGoto(tb, gf); err != nil {
		return nil, err
	}
	return tb, nil
}
