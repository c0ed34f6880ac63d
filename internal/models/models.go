// Package models holds the structures the ctlcheck command can check
// formulas against.
package models

import (
	"fmt"
	"slices"

	"github.com/goatx/ctl"
)

// Model is a named structure builder.
type Model struct {
	Name        string
	Description string
	Build       func() *ctl.Structure[string]
}

var registry = map[string]Model{}

func register(m Model) {
	if _, ok := registry[m.Name]; ok {
		panic(fmt.Sprintf("models: %s registered twice", m.Name))
	}
	registry[m.Name] = m
}

// Lookup returns the model registered under name.
func Lookup(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return Model{}, fmt.Errorf("unknown model %q (available: %v)", name, Names())
	}
	return m, nil
}

// Names returns the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type edge struct{ from, to string }

func build(initial string, labels map[string][]ctl.Proposition, edges []edge) *ctl.Structure[string] {
	st := ctl.NewStructure(initial, ctl.NewLabel(labels[initial]...))
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if name == initial {
			continue
		}
		st.MustAddState(name, ctl.NewLabel(labels[name]...))
	}
	for _, e := range edges {
		st.AddTransition(e.from, e.to)
	}
	return st
}

func init() {
	register(Model{
		Name:        "triangle",
		Description: "three states 0{p0,p1} 1{p1,p2} 2{p2}; 0->1 1->2 2->0 1->0 2->2",
		Build: func() *ctl.Structure[string] {
			return build("0",
				map[string][]ctl.Proposition{
					"0": {"p0", "p1"},
					"1": {"p1", "p2"},
					"2": {"p2"},
				},
				[]edge{{"0", "1"}, {"1", "2"}, {"2", "0"}, {"1", "0"}, {"2", "2"}},
			)
		},
	})

	register(Model{
		Name:        "selfloop",
		Description: "one state {p} with a self-loop",
		Build: func() *ctl.Structure[string] {
			return build("0",
				map[string][]ctl.Proposition{"0": {"p"}},
				[]edge{{"0", "0"}},
			)
		},
	})

	register(Model{
		Name:        "deadend",
		Description: "one state {p} without successors",
		Build: func() *ctl.Structure[string] {
			return build("0", map[string][]ctl.Proposition{"0": {"p"}}, nil)
		},
	})

	register(Model{
		Name:        "mutex",
		Description: "two processes cycling through non-critical (n), trying (t) and critical (c) sections",
		Build: func() *ctl.Structure[string] {
			return build("n1n2",
				map[string][]ctl.Proposition{
					"n1n2": {"n1", "n2"},
					"t1n2": {"t1", "n2"},
					"c1n2": {"c1", "n2"},
					"t1t2": {"t1", "t2"},
					"c1t2": {"c1", "t2"},
					"n1t2": {"n1", "t2"},
					"n1c2": {"n1", "c2"},
					"t1c2": {"t1", "c2"},
				},
				[]edge{
					{"n1n2", "t1n2"}, {"n1n2", "n1t2"},
					{"t1n2", "c1n2"}, {"t1n2", "t1t2"},
					{"c1n2", "n1n2"}, {"c1n2", "c1t2"},
					{"t1t2", "c1t2"}, {"t1t2", "t1c2"},
					{"c1t2", "n1t2"},
					{"n1t2", "t1t2"}, {"n1t2", "n1c2"},
					{"n1c2", "n1n2"}, {"n1c2", "t1c2"},
					{"t1c2", "t1n2"},
				},
			)
		},
	})
}
