package ctl

import (
	"cmp"
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Checker decides CTL formulas against a single Structure.
//
// A Checker never mutates its structure. Markings are recomputed on every
// call unless the checker was created with WithMarkingCache.
type Checker[S cmp.Ordered] struct {
	st     *Structure[S]
	logger *zap.Logger
	cache  *markingCache[S]
}

// NewChecker creates a checker for st.
//
// Parameters:
//   - st: The structure formulas are evaluated against
//   - opts: Optional settings such as WithLogger and WithMarkingCache
//
// Returns a Checker that may be shared between goroutines.
//
// Example:
//
//	c := ctl.NewChecker(st, ctl.WithMarkingCache())
//	ok := c.Check(ctl.AU(ctl.True(), ctl.Atomic("done")))
func NewChecker[S cmp.Ordered](st *Structure[S], opts ...Option) *Checker[S] {
	os := newOptions(opts...)
	c := &Checker[S]{
		st:     st,
		logger: os.logger,
	}
	if os.cache {
		c.cache = newMarkingCache[S]()
	}
	return c
}

// Check reports whether f holds in the initial state of the structure.
// The structure is read-locked for the whole evaluation.
func (c *Checker[S]) Check(f Formula) bool {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	holds := c.marking(f).Contains(c.st.initial)
	c.logger.Debug("checked formula",
		zap.Stringer("formula", f),
		zap.Bool("holds", holds),
	)
	return holds
}

// Marking returns the set of states in which f holds. The returned marking
// belongs to the caller.
func (c *Checker[S]) Marking(f Formula) Marking[S] {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()
	return c.marking(f).clone()
}

// CheckAll checks independent formulas concurrently against the same
// structure and returns one verdict per formula, in order. The structure is
// read-locked until every check has finished. Checks not yet started when
// ctx is cancelled are skipped and ctx.Err() is returned.
func (c *Checker[S]) CheckAll(ctx context.Context, fs ...Formula) ([]bool, error) {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	results := make([]bool, len(fs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range fs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = c.marking(f).Contains(c.st.initial)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check %d formulas: %w", len(fs), err)
	}
	return results, nil
}

// Check is a shorthand for NewChecker(st).Check(f).
func Check[S cmp.Ordered](st *Structure[S], f Formula) bool {
	return NewChecker(st).Check(f)
}

// marking expects c.st.mu to be read-locked. Markings it returns may be
// shared with the cache and must not be modified.
func (c *Checker[S]) marking(f Formula) Marking[S] {
	if c.cache != nil {
		return c.cache.lookup(c.st.revision, f, c.mark)
	}
	return c.mark(f)
}

// mark evaluates the operands of f first and combines their markings.
func (c *Checker[S]) mark(f Formula) Marking[S] {
	var m Marking[S]
	switch f := f.(type) {
	case *AtomicFormula:
		m = c.markAtomic(f.Prop)
	case *AndFormula:
		m = intersect(c.marking(f.Left), c.marking(f.Right))
	case *NotFormula:
		m = c.markNot(c.marking(f.Operand))
	case *ExistsFormula:
		switch p := f.Path.(type) {
		case *NextFormula:
			m = c.markEX(c.marking(p.Operand))
		case *UntilFormula:
			m = c.markEU(c.marking(p.Left), c.marking(p.Right))
		default:
			panic(fmt.Sprintf("ctl: unexpected path formula %T", p))
		}
	case *ForallFormula:
		switch p := f.Path.(type) {
		case *NextFormula:
			m = c.markAX(c.marking(p.Operand))
		case *UntilFormula:
			m = c.markAU(c.marking(p.Left), c.marking(p.Right))
		default:
			panic(fmt.Sprintf("ctl: unexpected path formula %T", p))
		}
	default:
		panic(fmt.Sprintf("ctl: unexpected formula %T", f))
	}

	if ce := c.logger.Check(zap.DebugLevel, "marked subformula"); ce != nil {
		ce.Write(zap.Stringer("formula", f), zap.Int("states", m.Len()))
	}
	return m
}

func (c *Checker[S]) markAtomic(p Proposition) Marking[S] {
	m := make(Marking[S])
	for s, l := range c.st.labels {
		if l.Contains(p) {
			m.add(s)
		}
	}
	return m
}

func (c *Checker[S]) markNot(phi Marking[S]) Marking[S] {
	m := make(Marking[S], len(c.st.labels)-len(phi))
	for s := range c.st.labels {
		if !phi.Contains(s) {
			m.add(s)
		}
	}
	return m
}

func (c *Checker[S]) markEX(phi Marking[S]) Marking[S] {
	m := make(Marking[S])
	for s := range c.st.labels {
		for _, succ := range c.st.successors[s] {
			if phi.Contains(succ) {
				m.add(s)
				break
			}
		}
	}
	return m
}

// markAX keeps states without successors: A X φ holds vacuously there.
func (c *Checker[S]) markAX(phi Marking[S]) Marking[S] {
	m := make(Marking[S])
	for s := range c.st.labels {
		all := true
		for _, succ := range c.st.successors[s] {
			if !phi.Contains(succ) {
				all = false
				break
			}
		}
		if all {
			m.add(s)
		}
	}
	return m
}
