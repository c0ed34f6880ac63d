package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goatx/ctl"
	"go.uber.org/zap"
)

type Light string

const (
	Red      Light = "red"
	Green    Light = "green"
	Yellow   Light = "yellow"
	Flashing Light = "flashing"
)

func newTrafficLight() *ctl.Structure[Light] {
	st := ctl.NewStructure(Red, ctl.NewLabel("stop"))
	st.MustAddState(Green, ctl.NewLabel("go"))
	st.MustAddState(Yellow, ctl.NewLabel("caution"))
	// a faulty controller may get stuck flashing until it is repaired
	st.MustAddState(Flashing, ctl.NewLabel("caution"))

	st.AddTransition(Red, Green)
	st.AddTransition(Green, Yellow)
	st.AddTransition(Yellow, Red)
	st.AddTransition(Yellow, Flashing)
	st.AddTransition(Flashing, Flashing)
	st.AddTransition(Flashing, Red)
	return st
}

var (
	stop    = ctl.Atomic("stop")
	goAhead = ctl.Atomic("go")
	caution = ctl.Atomic("caution")
)

type property struct {
	name    string
	formula ctl.Formula
}

var properties = []property{
	{"never go and stop at once", ctl.AG(ctl.Not(ctl.And(goAhead, stop)))},
	{"stop is always reachable", ctl.AG(ctl.EF(stop))},
	{"stop always comes again", ctl.AG(ctl.AF(stop))},
	{"red is followed by green", ctl.AX(goAhead)},
	{"caution can last forever", ctl.EG(caution)},
}

func run(ctx context.Context, w io.Writer, logger *zap.Logger) error {
	st := newTrafficLight()
	fs := make([]ctl.Formula, len(properties))
	for i, p := range properties {
		fs[i] = p.formula
	}

	checker := ctl.NewChecker(st, ctl.WithLogger(logger), ctl.WithMarkingCache())
	verdicts, err := checker.CheckAll(ctx, fs...)
	if err != nil {
		return err
	}
	for i, p := range properties {
		_, _ = fmt.Fprintf(w, "%-26s %v\n", p.name, verdicts[i])
	}
	return nil
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), os.Stdout, logger); err != nil {
		logger.Fatal("check failed", zap.Error(err))
	}
	if len(os.Args) > 1 {
		file, err := os.Create(os.Args[1])
		if err != nil {
			logger.Fatal("create dot file", zap.Error(err))
		}
		defer file.Close()
		st := newTrafficLight()
		st.WriteDot(file, ctl.NewChecker(st).Marking(caution))
	}
}
