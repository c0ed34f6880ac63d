package ctl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Formula is a CTL state formula. The set of implementations is closed:
// Atomic, And, Not, Exists and Forall are the only constructors, and every
// other connective is a macro over them.
//
// Formula values are immutable and may be shared between several parents.
type Formula interface {
	fmt.Stringer
	isFormula()
}

// PathFormula is a temporal path formula. It is only meaningful wrapped in
// Exists or Forall.
type PathFormula interface {
	fmt.Stringer
	isPathFormula()
}

// AtomicFormula holds in the states whose label contains Prop.
type AtomicFormula struct {
	Prop Proposition
}

// AndFormula holds where both operands hold.
type AndFormula struct {
	Left, Right Formula
}

// NotFormula holds where its operand does not.
type NotFormula struct {
	Operand Formula
}

// ExistsFormula holds in a state from which some path satisfies Path.
type ExistsFormula struct {
	Path PathFormula
}

// ForallFormula holds in a state from which every path satisfies Path.
type ForallFormula struct {
	Path PathFormula
}

// NextFormula holds of a path whose second state satisfies Operand.
type NextFormula struct {
	Operand Formula
}

// UntilFormula holds of a path on which Right eventually holds and Left
// holds at every position strictly before that.
type UntilFormula struct {
	Left, Right Formula
}

func (*AtomicFormula) isFormula() {}
func (*AndFormula) isFormula()    {}
func (*NotFormula) isFormula()    {}
func (*ExistsFormula) isFormula() {}
func (*ForallFormula) isFormula() {}

func (*NextFormula) isPathFormula()  {}
func (*UntilFormula) isPathFormula() {}

func (f *AtomicFormula) String() string {
	if needsQuoting(f.Prop) {
		return strconv.Quote(string(f.Prop))
	}
	return string(f.Prop)
}

func (f *AndFormula) String() string    { return fmt.Sprintf("(and %s %s)", f.Left, f.Right) }
func (f *NotFormula) String() string    { return fmt.Sprintf("(not %s)", f.Operand) }
func (f *ExistsFormula) String() string { return fmt.Sprintf("(E %s)", f.Path) }
func (f *ForallFormula) String() string { return fmt.Sprintf("(A %s)", f.Path) }
func (f *NextFormula) String() string   { return fmt.Sprintf("(X %s)", f.Operand) }
func (f *UntilFormula) String() string  { return fmt.Sprintf("(U %s %s)", f.Left, f.Right) }

// needsQuoting reports whether p would not read back as the same bare
// symbol: empty, a keyword, not valid UTF-8, or containing a delimiter.
func needsQuoting(p Proposition) bool {
	switch p {
	case "", "true", "false":
		return true
	}
	if !utf8.ValidString(string(p)) {
		return true
	}
	return strings.ContainsFunc(string(p), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`();"`, r)
	})
}

// Atomic returns the formula holding in states labeled with p.
func Atomic(p Proposition) Formula { return &AtomicFormula{Prop: p} }

// And returns the conjunction of l and r.
func And(l, r Formula) Formula { return &AndFormula{Left: l, Right: r} }

// Not returns the negation of f.
func Not(f Formula) Formula { return &NotFormula{Operand: f} }

// Exists quantifies path existentially.
func Exists(path PathFormula) Formula { return &ExistsFormula{Path: path} }

// Forall quantifies path universally.
func Forall(path PathFormula) Formula { return &ForallFormula{Path: path} }

// Next returns the path formula X f.
func Next(f Formula) PathFormula { return &NextFormula{Operand: f} }

// Until returns the path formula l U r.
func Until(l, r Formula) PathFormula { return &UntilFormula{Left: l, Right: r} }

// ---------- Derived connectives ----------

const contradictionProp Proposition = "⊥"

// False returns a formula that holds nowhere, written as p ∧ ¬p.
func False() Formula {
	p := Atomic(contradictionProp)
	return And(p, Not(p))
}

// True returns a formula that holds everywhere, written as ¬(p ∧ ¬p).
func True() Formula { return Not(False()) }

// Or returns l ∨ r as ¬(¬l ∧ ¬r).
func Or(l, r Formula) Formula { return Not(And(Not(l), Not(r))) }

// Implies returns l → r as ¬(l ∧ ¬r).
func Implies(l, r Formula) Formula { return Not(And(l, Not(r))) }

// EX returns E X f.
func EX(f Formula) Formula { return Exists(Next(f)) }

// AX returns A X f.
func AX(f Formula) Formula { return Forall(Next(f)) }

// EU returns E[l U r].
func EU(l, r Formula) Formula { return Exists(Until(l, r)) }

// AU returns A[l U r].
func AU(l, r Formula) Formula { return Forall(Until(l, r)) }

// EF returns E[true U f].
func EF(f Formula) Formula { return EU(True(), f) }

// AF returns A[true U f].
func AF(f Formula) Formula { return AU(True(), f) }

// EG returns ¬AF¬f.
func EG(f Formula) Formula { return Not(AF(Not(f))) }

// AG returns ¬EF¬f.
func AG(f Formula) Formula { return Not(EF(Not(f))) }
