package lr

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/corvidlang/lr1/grammar"
	"github.com/corvidlang/lr1/observer"
	"github.com/corvidlang/lr1/token"
)

// StateID is a dense, non-negative integer assigned in insertion order by
// the state enumerator. State 0 is always the closure of the start item.
type StateID int

// Transition records a single CFSM edge: from state From, on element X, to
// state To.
type Transition struct {
	From StateID
	X    grammar.Element
	To   StateID
}

// stateEntry pairs a discovered item set with its dense StateID, the unit
// held in States.states.
type stateEntry struct {
	id StateID
	is ItemSet
}

// stateComparator orders stateEntry values by StateID, exactly the way
// gorgo/lr/tables.go's own stateComparator orders *CFSMState by serial ID
// for CFSM.states (a treeset.Set).
func stateComparator(a, b interface{}) int {
	e1 := a.(*stateEntry)
	e2 := b.(*stateEntry)
	return utils.IntComparator(int(e1.id), int(e2.id))
}

// States is the canonical LR(1) collection: every distinct item set
// discovered during enumeration, densely numbered, plus every transition
// between them. Canonical storage is a treeset.Set of stateEntry ordered by
// StateID, mirroring gorgo/lr/tables.go's CFSM.states; order caches the same
// entries as a slice so Enumerate's worklist loop can index a state by ID
// without rescanning the tree on every transition.
type States struct {
	states      *treeset.Set // *stateEntry, ordered by StateID
	order       []ItemSet    // StateID -> ItemSet, kept in sync with states
	idOf        map[string]StateID
	Transitions []Transition
}

// ItemSet returns the item set for a state.
func (s *States) ItemSet(id StateID) ItemSet { return s.order[id] }

// Len returns the number of states.
func (s *States) Len() int { return s.states.Size() }

// Enumerate builds the canonical LR(1) collection of item sets for a
// grammar store, starting from the closure of {(start formula, dot 0, #)}
// (spec.md §4.5). obs is notified once per newly discovered state, in
// enumeration order; pass observer.Null{} to disable.
func Enumerate(store *grammar.Store, obs observer.BuildObserver) *States {
	if obs == nil {
		obs = observer.Null{}
	}
	s := &States{
		states: treeset.NewWith(stateComparator),
		idOf:   make(map[string]StateID),
	}

	startIdx, _ := store.Index(store.Start())
	s0 := Closure(store, NewItemSet(NewItem(startIdx, store.Start(), token.End())))
	s.addState(s0, obs)

	worklist := arrayqueue.New()
	worklist.Enqueue(StateID(0))

	edges := arraylist.New()

	for !worklist.Empty() {
		v, _ := worklist.Dequeue()
		cur := v.(StateID)
		I := s.order[cur]
		for _, x := range TransitionElements(I) {
			J := Closure(store, Goto(I, x))
			if J.Size() == 0 {
				continue
			}
			to, isNew := s.findOrAdd(J, obs)
			if isNew {
				worklist.Enqueue(to)
			}
			edges.Add(Transition{From: cur, X: x, To: to})
		}
	}

	s.Transitions = make([]Transition, edges.Size())
	for i := 0; i < edges.Size(); i++ {
		v, _ := edges.Get(i)
		s.Transitions[i] = v.(Transition)
	}
	return s
}

func (s *States) addState(is ItemSet, obs observer.BuildObserver) StateID {
	id := StateID(len(s.order))
	s.order = append(s.order, is)
	s.idOf[is.Key()] = id
	s.states.Add(&stateEntry{id: id, is: is})
	dump := make([]string, 0, is.Size())
	for _, it := range is.Items() {
		dump = append(dump, it.String())
	}
	obs.ItemSetAdded(int(id), dump)
	return id
}

// findOrAdd returns the StateID for is, registering it as a new state if it
// has not been seen before (deduplication is by ItemSet value, never by
// pointer identity, per spec.md §9 design notes).
func (s *States) findOrAdd(is ItemSet, obs observer.BuildObserver) (StateID, bool) {
	if id, ok := s.idOf[is.Key()]; ok {
		return id, false
	}
	return s.addState(is, obs), true
}

// Each calls f once per state in ascending StateID order, walking the
// treeset.Set directly rather than the order cache — the canonical
// iteration path for callers that want the CFSM's state ordering without
// reaching into States' internals (e.g. a future table dump or debug view).
func (s *States) Each(f func(StateID, ItemSet)) {
	it := s.states.Iterator()
	for it.Next() {
		e := it.Value().(*stateEntry)
		f(e.id, e.is)
	}
}
