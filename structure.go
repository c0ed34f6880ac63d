package ctl

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Proposition is an atomic proposition that can label a state.
type Proposition string

// Label is the set of atomic propositions that hold in a state.
type Label map[Proposition]struct{}

// NewLabel builds a Label from the given propositions.
//
// Example:
//
//	l := ctl.NewLabel("p0", "p1")
func NewLabel(props ...Proposition) Label {
	l := make(Label, len(props))
	for _, p := range props {
		l[p] = struct{}{}
	}
	return l
}

// Contains reports whether p holds in the labeled state.
func (l Label) Contains(p Proposition) bool {
	_, ok := l[p]
	return ok
}

// Propositions returns the propositions of the label in sorted order.
func (l Label) Propositions() []Proposition {
	props := make([]Proposition, 0, len(l))
	for p := range l {
		props = append(props, p)
	}
	slices.Sort(props)
	return props
}

func (l Label) clone() Label {
	c := make(Label, len(l))
	for p := range l {
		c[p] = struct{}{}
	}
	return c
}

// Structure is an explicit finite Kripke structure: a set of labeled
// states, a designated initial state and a directed transition relation
// kept as successor and predecessor adjacency lists.
//
// A Structure is safe for concurrent use. Mutations take the write lock and
// checks hold the read lock for their full duration, so a check never
// observes a half-added transition.
type Structure[S cmp.Ordered] struct {
	mu sync.RWMutex

	initial      S
	labels       map[S]Label
	successors   map[S][]S
	predecessors map[S][]S
	transitions  int
	// revision is bumped on every mutation; cached markings are only valid
	// for the revision they were computed against.
	revision uint64
}

// NewStructure creates a structure whose only state is the initial one.
//
// Parameters:
//   - initial: The initial state
//   - label: The propositions holding in the initial state
//
// Returns a Structure ready for AddState and AddTransition.
//
// Example:
//
//	st := ctl.NewStructure(0, ctl.NewLabel("p0", "p1"))
//	st.MustAddState(1, ctl.NewLabel("p1", "p2"))
//	st.AddTransition(0, 1)
func NewStructure[S cmp.Ordered](initial S, label Label) *Structure[S] {
	st := &Structure[S]{
		initial:      initial,
		labels:       make(map[S]Label),
		successors:   make(map[S][]S),
		predecessors: make(map[S][]S),
	}
	st.labels[initial] = label.clone()
	return st
}

// AddState registers a new state with its label. Registering an id twice is
// rejected with an error wrapping ErrDuplicateState.
func (st *Structure[S]) AddState(id S, label Label) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.labels[id]; ok {
		return fmt.Errorf("add state %v: %w", id, ErrDuplicateState)
	}
	st.labels[id] = label.clone()
	st.revision++
	return nil
}

// AddTransition adds an edge from origin to destination. Self-loops and
// parallel edges are allowed and count towards the out-degree.
//
// Both endpoints must already be registered. An unknown endpoint means the
// model itself is malformed, so AddTransition panics with an
// *UnknownStateError naming it and leaves the structure untouched.
func (st *Structure[S]) AddTransition(origin, destination S) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.mustExist("add transition origin", origin)
	st.mustExist("add transition destination", destination)
	st.successors[origin] = append(st.successors[origin], destination)
	st.predecessors[destination] = append(st.predecessors[destination], origin)
	st.transitions++
	st.revision++
}

// MustAddState is like AddState but panics on error. It is meant for
// structures written out literally in code and tests.
func (st *Structure[S]) MustAddState(id S, label Label) {
	if err := st.AddState(id, label); err != nil {
		panic(err)
	}
}

// InitialState returns the designated initial state.
func (st *Structure[S]) InitialState() S {
	return st.initial
}

// States returns every registered state in ascending order.
func (st *Structure[S]) States() []S {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.states()
}

// Len returns the number of states.
func (st *Structure[S]) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.labels)
}

// Transitions returns the number of edges, parallel edges included.
func (st *Structure[S]) Transitions() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.transitions
}

// Label returns the propositions holding in s.
// It panics with an *UnknownStateError if s is not registered.
func (st *Structure[S]) Label(s S) Label {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.label("label", s).clone()
}

// Successors returns the destinations of the edges leaving s, in insertion
// order. It panics with an *UnknownStateError if s is not registered.
func (st *Structure[S]) Successors(s S) []S {
	st.mu.RLock()
	defer st.mu.RUnlock()
	st.mustExist("successors", s)
	return slices.Clone(st.successors[s])
}

// Predecessors returns the origins of the edges entering s, in insertion
// order. It panics with an *UnknownStateError if s is not registered.
func (st *Structure[S]) Predecessors(s S) []S {
	st.mu.RLock()
	defer st.mu.RUnlock()
	st.mustExist("predecessors", s)
	return slices.Clone(st.predecessors[s])
}

// OutDegree returns len(Successors(s)).
// It panics with an *UnknownStateError if s is not registered.
func (st *Structure[S]) OutDegree(s S) int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.outDegree("out degree", s)
}

// The lower-case accessors below expect the caller to hold st.mu.

func (st *Structure[S]) states() []S {
	ss := make([]S, 0, len(st.labels))
	for s := range st.labels {
		ss = append(ss, s)
	}
	slices.Sort(ss)
	return ss
}

func (st *Structure[S]) mustExist(op string, s S) {
	if _, ok := st.labels[s]; !ok {
		panic(&UnknownStateError{Op: op, State: s})
	}
}

func (st *Structure[S]) label(op string, s S) Label {
	l, ok := st.labels[s]
	if !ok {
		panic(&UnknownStateError{Op: op, State: s})
	}
	return l
}

func (st *Structure[S]) outDegree(op string, s S) int {
	st.mustExist(op, s)
	return len(st.successors[s])
}
