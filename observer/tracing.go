package observer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer resolves the structured tracer this package logs through, keyed
// the way the teacher selects its tracers (a dotted key per subsystem).
func tracer() tracing.Trace {
	return tracing.Select("lr1.build")
}

// Tracing is a BuildObserver that routes notifications through
// github.com/npillmayer/schuko/tracing, at Debug level for item sets and
// Error level for conflicts (a conflict is always worth seeing even with
// tracing turned down).
type Tracing struct{}

func (Tracing) ItemSetAdded(id int, items []string) {
	t := tracer()
	t.Debugf("state %d: %d item(s)", id, len(items))
	for _, it := range items {
		t.Debugf("  %s", it)
	}
}

func (Tracing) Conflict(table string, row int, col string, old, new string) {
	tracer().Errorf("conflict in %s(%d,%s): keeping %s, discarding %s", table, row, col, old, new)
}
