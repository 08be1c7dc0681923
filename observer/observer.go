/*
Package observer decouples the table generator and state enumerator from any
particular logging/recording backend. spec.md's design notes call out the
Python original's approach — a single process-wide recorder object writing
item-set dumps and conflicts — as something a rewrite should replace with an
explicit, injectable interface instead of a module-scope singleton. This
package is that interface, plus five concrete implementations: a no-op, a
fan-out to several observers, an in-memory collector, a tracing-backed one
(for structured logs), and a file-backed one that reproduces the original's
two record streams.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package observer

import "fmt"

// BuildObserver receives notifications from the state enumerator and table
// synthesizer as a grammar is compiled. Implementations must be safe to call
// synchronously from a single build (builds are single-threaded, see
// spec.md §5); none of the methods return errors because a build must never
// fail merely because logging did.
type BuildObserver interface {
	// ItemSetAdded is called once per newly discovered canonical state, in
	// state-enumeration order, with its assigned id and a human-readable
	// rendering of its items.
	ItemSetAdded(id int, items []string)

	// Conflict is called whenever an ACTION or GOTO cell receives a second,
	// discarded write. table is "ACTION" or "GOTO".
	Conflict(table string, row int, col string, old, new string)
}

// Null discards every notification. It is the default BuildObserver.
type Null struct{}

func (Null) ItemSetAdded(int, []string)            {}
func (Null) Conflict(string, int, string, string, string) {}

// Multi fans out to several observers in order.
type Multi []BuildObserver

func (m Multi) ItemSetAdded(id int, items []string) {
	for _, o := range m {
		o.ItemSetAdded(id, items)
	}
}

func (m Multi) Conflict(table string, row int, col string, old, new string) {
	for _, o := range m {
		o.Conflict(table, row, col, old, new)
	}
}

// ConflictRecord is a single recorded BuildConflict, as described in
// spec.md §4.6/§7 — the table name, cell coordinates, and the two
// contending values, the first of which wins.
type ConflictRecord struct {
	Table    string
	Row      int
	Col      string
	OldValue string
	NewValue string
}

func (c ConflictRecord) String() string {
	return fmt.Sprintf("%s (%d, %s) old: %s new: %s", c.Table, c.Row, c.Col, c.OldValue, c.NewValue)
}

// Collector accumulates conflicts and item-set dumps in memory, for callers
// that want the full build record (e.g. a CLI summary or a test assertion)
// without wiring up file I/O.
type Collector struct {
	ItemSets  []string
	Conflicts []ConflictRecord
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector { return &Collector{} }

func (c *Collector) ItemSetAdded(id int, items []string) {
	c.ItemSets = append(c.ItemSets, fmt.Sprintf("ItemsNo: %d\n%s", id, joinLines(items)))
}

func (c *Collector) Conflict(table string, row int, col string, old, new string) {
	c.Conflicts = append(c.Conflicts, ConflictRecord{table, row, col, old, new})
}

func joinLines(lines []string) string {
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}
