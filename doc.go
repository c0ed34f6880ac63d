// Package ctl is an explicit-state model checker for Computation Tree Logic.
//
// A Structure is a finite Kripke structure: states labeled with atomic
// propositions, a transition relation and a designated initial state.
// Formulas are built from the core connectives Atomic, And, Not and the
// path quantifiers Exists and Forall over Next and Until; the remaining
// operators (Or, Implies, EF, AG, ...) are derived from them.
//
// A Checker labels states bottom-up, one subformula at a time, and reports
// whether a formula holds in the initial state:
//
//	st := ctl.NewStructure(0, ctl.NewLabel("p"))
//	st.MustAddState(1, ctl.NewLabel("q"))
//	st.AddTransition(0, 1)
//	st.AddTransition(1, 1)
//
//	ctl.Check(st, ctl.AF(ctl.Atomic("q"))) // true
package ctl
