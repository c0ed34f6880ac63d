package ctl

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
	cache  bool
}

// Option is a configuration option for NewChecker.
//
// Use the provided helper functions like WithLogger() and
// WithMarkingCache() to create options.
//
// Example:
//
//	c := ctl.NewChecker(st,
//	    ctl.WithLogger(logger),
//	    ctl.WithMarkingCache(),
//	)
type Option interface {
	apply(*options)
}

func newOptions(opts ...Option) *options {
	os := &options{logger: zap.NewNop()}
	for _, o := range opts {
		o.apply(os)
	}
	return os
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithLogger makes the checker report every computed marking at debug
// level. A nil logger is ignored.
//
// Parameters:
//   - l: The logger to write to
//
// Returns an Option that can be passed to NewChecker.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}

// WithMarkingCache keeps the marking of every subformula across calls, keyed
// by the formula's printed form. Formulas that share subformulas then reuse
// their markings. The cache is dropped whenever the structure is mutated.
//
// Returns an Option that can be passed to NewChecker.
func WithMarkingCache() Option {
	return optionFunc(func(o *options) {
		o.cache = true
	})
}
