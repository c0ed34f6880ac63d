package ctl

import (
	"cmp"
	"slices"
)

// Marking is the set of states in which a formula holds.
type Marking[S cmp.Ordered] map[S]struct{}

// NewMarking returns a marking containing exactly the given states.
func NewMarking[S cmp.Ordered](states ...S) Marking[S] {
	m := make(Marking[S], len(states))
	for _, s := range states {
		m.add(s)
	}
	return m
}

// Contains reports whether s is marked.
func (m Marking[S]) Contains(s S) bool {
	_, ok := m[s]
	return ok
}

// Len returns the number of marked states.
func (m Marking[S]) Len() int {
	return len(m)
}

// States returns the marked states in ascending order.
func (m Marking[S]) States() []S {
	ss := make([]S, 0, len(m))
	for s := range m {
		ss = append(ss, s)
	}
	slices.Sort(ss)
	return ss
}

// SubsetOf reports whether every state marked in m is marked in o.
func (m Marking[S]) SubsetOf(o Marking[S]) bool {
	if len(m) > len(o) {
		return false
	}
	for s := range m {
		if !o.Contains(s) {
			return false
		}
	}
	return true
}

// Equal reports whether m and o mark the same states.
func (m Marking[S]) Equal(o Marking[S]) bool {
	return len(m) == len(o) && m.SubsetOf(o)
}

func (m Marking[S]) add(s S) {
	m[s] = struct{}{}
}

func (m Marking[S]) clone() Marking[S] {
	c := make(Marking[S], len(m))
	for s := range m {
		c.add(s)
	}
	return c
}

// intersect iterates the smaller of the two markings.
func intersect[S cmp.Ordered](a, b Marking[S]) Marking[S] {
	if len(a) > len(b) {
		a, b = b, a
	}
	m := make(Marking[S], len(a))
	for s := range a {
		if b.Contains(s) {
			m.add(s)
		}
	}
	return m
}
