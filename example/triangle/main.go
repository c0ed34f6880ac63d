package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goatx/ctl"
)

func newTriangle() *ctl.Structure[int] {
	st := ctl.NewStructure(0, ctl.NewLabel("p0", "p1"))
	st.MustAddState(1, ctl.NewLabel("p1", "p2"))
	st.MustAddState(2, ctl.NewLabel("p2"))

	st.AddTransition(0, 1)
	st.AddTransition(1, 2)
	st.AddTransition(2, 0)
	st.AddTransition(1, 0)
	st.AddTransition(2, 2)
	return st
}

func properties() []ctl.Formula {
	return []ctl.Formula{
		// E[EX ¬p0 U AF (p1 ∧ p2)]
		ctl.EU(
			ctl.EX(ctl.Not(ctl.Atomic("p0"))),
			ctl.AU(ctl.True(), ctl.And(ctl.Atomic("p1"), ctl.Atomic("p2"))),
		),
		// AX A[p1 U p0]
		ctl.AX(ctl.AU(ctl.Atomic("p1"), ctl.Atomic("p0"))),
	}
}

func run(w io.Writer) {
	checker := ctl.NewChecker(newTriangle())
	for _, f := range properties() {
		_, _ = fmt.Fprintf(w, "%v: %s\n", checker.Check(f), f)
		_, _ = fmt.Fprintf(w, "  satisfied in %v\n", checker.Marking(f).States())
	}
}

func main() {
	run(os.Stdout)
}
