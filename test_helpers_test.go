package ctl

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// newTriangle builds the three-state structure
//
//	0 {p0,p1} -> 1
//	1 {p1,p2} -> 2, 0
//	2 {p2}    -> 0, 2
func newTriangle() *Structure[int] {
	st := NewStructure(0, NewLabel("p0", "p1"))
	st.MustAddState(1, NewLabel("p1", "p2"))
	st.MustAddState(2, NewLabel("p2"))
	st.AddTransition(0, 1)
	st.AddTransition(1, 2)
	st.AddTransition(2, 0)
	st.AddTransition(1, 0)
	st.AddTransition(2, 2)
	return st
}

// newTestStructure builds a structure from a label table and an edge list.
// State 0 is the initial state.
func newTestStructure(t *testing.T, labels []Label, edges [][2]int) *Structure[int] {
	t.Helper()
	st := NewStructure(0, labels[0])
	for i := 1; i < len(labels); i++ {
		if err := st.AddState(i, labels[i]); err != nil {
			t.Fatalf("AddState(%d) error = %v", i, err)
		}
	}
	for _, e := range edges {
		st.AddTransition(e[0], e[1])
	}
	return st
}

var randomProps = []Proposition{"a", "b", "c"}

// randomStructure returns a structure with n states, random labels over
// randomProps and roughly n*density edges, dead ends and self-loops included.
func randomStructure(r *rand.Rand, n int, density float64) *Structure[int] {
	label := func() Label {
		l := NewLabel()
		for _, p := range randomProps {
			if r.IntN(2) == 0 {
				l[p] = struct{}{}
			}
		}
		return l
	}
	st := NewStructure(0, label())
	for i := 1; i < n; i++ {
		st.MustAddState(i, label())
	}
	edges := int(float64(n) * density)
	for i := 0; i < edges; i++ {
		st.AddTransition(r.IntN(n), r.IntN(n))
	}
	return st
}

// randomFormula returns a formula of at most the given depth.
func randomFormula(r *rand.Rand, depth int) Formula {
	if depth == 0 {
		return Atomic(randomProps[r.IntN(len(randomProps))])
	}
	sub := func() Formula { return randomFormula(r, depth-1) }
	switch r.IntN(7) {
	case 0:
		return Atomic(randomProps[r.IntN(len(randomProps))])
	case 1:
		return And(sub(), sub())
	case 2:
		return Not(sub())
	case 3:
		return EX(sub())
	case 4:
		return AX(sub())
	case 5:
		return EU(sub(), sub())
	default:
		return AU(sub(), sub())
	}
}

func ints(m Marking[int]) []int {
	return m.States()
}

func describe(st *Structure[int]) string {
	s := ""
	for _, from := range st.States() {
		s += fmt.Sprintf("%d%v->%v ", from, st.Label(from).Propositions(), st.Successors(from))
	}
	return s
}
