package observer

import (
	"fmt"
	"io"
)

// File is a BuildObserver writing the two record streams the Python
// original (recorders.py) produced: one line per discovered item set and
// one line per conflict. Unlike the original's BuildRecorder, File does not
// own global state or a finalizer-based close — callers open and close the
// underlying writers themselves (see spec.md §5's scoped file-handle
// policy).
type File struct {
	ItemSets  io.Writer
	Conflicts io.Writer
}

func (f *File) ItemSetAdded(id int, items []string) {
	if f.ItemSets == nil {
		return
	}
	fmt.Fprintf(f.ItemSets, "ItemsNo: %d\n", id)
	for _, it := range items {
		fmt.Fprintln(f.ItemSets, it)
	}
}

func (f *File) Conflict(table string, row int, col string, old, new string) {
	if f.Conflicts == nil {
		return
	}
	fmt.Fprintf(f.Conflicts, "%s (%d, %s) old: %s new: %s\n", table, row, col, old, new)
}
