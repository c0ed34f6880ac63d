package ctl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStructure_AddTransition(t *testing.T) {
	tests := []struct {
		name      string
		edges     [][2]int
		wantSuccs map[int][]int
		wantPreds map[int][]int
		wantDeg   map[int]int
	}{
		{
			name:      "no edges",
			edges:     nil,
			wantSuccs: map[int][]int{0: {}, 1: {}},
			wantPreds: map[int][]int{0: {}, 1: {}},
			wantDeg:   map[int]int{0: 0, 1: 0},
		},
		{
			name:      "self loop",
			edges:     [][2]int{{1, 1}},
			wantSuccs: map[int][]int{0: {}, 1: {1}},
			wantPreds: map[int][]int{0: {}, 1: {1}},
			wantDeg:   map[int]int{0: 0, 1: 1},
		},
		{
			name:      "parallel edges keep multiplicity",
			edges:     [][2]int{{0, 1}, {0, 1}, {1, 0}},
			wantSuccs: map[int][]int{0: {1, 1}, 1: {0}},
			wantPreds: map[int][]int{0: {1}, 1: {0, 0}},
			wantDeg:   map[int]int{0: 2, 1: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStructure(t, []Label{NewLabel(), NewLabel()}, tt.edges)
			for s, want := range tt.wantSuccs {
				if diff := cmp.Diff(want, st.Successors(s), cmp.Comparer(equalInts)); diff != "" {
					t.Errorf("Successors(%d) mismatch (-want +got):\n%s", s, diff)
				}
			}
			for s, want := range tt.wantPreds {
				if diff := cmp.Diff(want, st.Predecessors(s), cmp.Comparer(equalInts)); diff != "" {
					t.Errorf("Predecessors(%d) mismatch (-want +got):\n%s", s, diff)
				}
			}
			for s, want := range tt.wantDeg {
				if got := st.OutDegree(s); got != want {
					t.Errorf("OutDegree(%d) = %d, want %d", s, got, want)
				}
				if got := len(st.Successors(s)); got != st.OutDegree(s) {
					t.Errorf("len(Successors(%d)) = %d, OutDegree = %d", s, got, st.OutDegree(s))
				}
			}
			if got := st.Transitions(); got != len(tt.edges) {
				t.Errorf("Transitions() = %d, want %d", got, len(tt.edges))
			}
		})
	}
}

// equalInts treats nil and empty slices as equal.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStructure_AddTransitionUnknownStatePanics(t *testing.T) {
	tests := []struct {
		name        string
		origin      int
		destination int
		wantState   int
		wantOp      string
	}{
		{name: "unknown origin", origin: 7, destination: 0, wantState: 7, wantOp: "add transition origin"},
		{name: "unknown destination", origin: 0, destination: 5, wantState: 5, wantOp: "add transition destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewStructure(0, NewLabel("p"))
			func() {
				defer func() {
					r := recover()
					if r == nil {
						t.Fatal("AddTransition() did not panic on an unknown endpoint")
					}
					err, ok := r.(error)
					if !ok {
						t.Fatalf("recovered %v, want an error", r)
					}
					if !errors.Is(err, ErrUnknownState) {
						t.Fatalf("recovered %v, want ErrUnknownState", err)
					}
					var use *UnknownStateError
					if !errors.As(err, &use) {
						t.Fatalf("recovered %T, want *UnknownStateError", err)
					}
					if use.State != tt.wantState || use.Op != tt.wantOp {
						t.Errorf("UnknownStateError = %+v, want State %v Op %q", use, tt.wantState, tt.wantOp)
					}
				}()
				st.AddTransition(tt.origin, tt.destination)
			}()

			if st.Transitions() != 0 || len(st.Successors(0)) != 0 || len(st.Predecessors(0)) != 0 {
				t.Errorf("failed AddTransition modified the structure: %s", describe(st))
			}
			// The structure stays usable after the panic.
			if !Check(st, AX(False())) {
				t.Error("AX false should hold vacuously on the unchanged dead end")
			}
		})
	}
}

func TestStructure_AddStateDuplicate(t *testing.T) {
	st := NewStructure("init", NewLabel("p"))
	if err := st.AddState("next", NewLabel()); err != nil {
		t.Fatalf("AddState() error = %v", err)
	}
	err := st.AddState("init", NewLabel("q"))
	if !errors.Is(err, ErrDuplicateState) {
		t.Fatalf("AddState() error = %v, want ErrDuplicateState", err)
	}
	if !st.Label("init").Contains("p") || st.Label("init").Contains("q") {
		t.Errorf("duplicate AddState overwrote the label: %v", st.Label("init"))
	}
	if diff := cmp.Diff([]string{"init", "next"}, st.States()); diff != "" {
		t.Errorf("States() mismatch (-want +got):\n%s", diff)
	}
}

func TestStructure_QueryUnknownStatePanics(t *testing.T) {
	st := newTriangle()
	queries := map[string]func(){
		"Label":        func() { st.Label(42) },
		"Successors":   func() { st.Successors(42) },
		"Predecessors": func() { st.Predecessors(42) },
		"OutDegree":    func() { st.OutDegree(42) },
	}
	for name, q := range queries {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("recovered %v, want an error", r)
				}
				if !errors.Is(err, ErrUnknownState) {
					t.Errorf("recovered %v, want ErrUnknownState", err)
				}
			}()
			q()
		})
	}
}

func TestStructure_LabelIsCopied(t *testing.T) {
	l := NewLabel("p")
	st := NewStructure(0, l)
	l["q"] = struct{}{}
	got := st.Label(0)
	got["r"] = struct{}{}

	if diff := cmp.Diff([]Proposition{"p"}, st.Label(0).Propositions()); diff != "" {
		t.Errorf("Label(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestStructure_Accessors(t *testing.T) {
	st := newTriangle()
	if got := st.InitialState(); got != 0 {
		t.Errorf("InitialState() = %d, want 0", got)
	}
	if got := st.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, st.States()); diff != "" {
		t.Errorf("States() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 1}, st.Predecessors(0)); diff != "" {
		t.Errorf("Predecessors(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Proposition{"p1", "p2"}, st.Label(1).Propositions()); diff != "" {
		t.Errorf("Label(1) mismatch (-want +got):\n%s", diff)
	}
}
