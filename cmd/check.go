/*
Copyright © 2025 Honoka Toda, Shinya Ishitobi

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goatx/ctl"
	"github.com/goatx/ctl/internal/config"
	"github.com/goatx/ctl/internal/models"
	"github.com/goatx/ctl/internal/sexpr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type checkOptions struct {
	model   string
	json    bool
	dotPath string
	cache   bool
}

type checkReport struct {
	Model   string        `json:"model"`
	Initial string        `json:"initial"`
	Results []checkResult `json:"results"`
}

type checkResult struct {
	Formula string   `json:"formula"`
	Holds   bool     `json:"holds"`
	States  []string `json:"states"`
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	o := &checkOptions{}

	checkCmd := &cobra.Command{
		Use:   "check FORMULA...",
		Short: "Check formulas in the initial state of a model",
		Long: `Parse each FORMULA, evaluate it against the selected built-in model and report whether it holds in the initial state.
Formulas are checked concurrently. Use --json for a report that also lists every state satisfying each formula.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := o.model
			if name == "" {
				name = config.DefaultModel()
			}
			m, err := models.Lookup(name)
			if err != nil {
				return err
			}

			fs := make([]ctl.Formula, len(args))
			for i, arg := range args {
				f, err := sexpr.Parse(arg)
				if err != nil {
					return fmt.Errorf("formula %d: %w", i+1, err)
				}
				fs[i] = f
			}

			opts := []ctl.Option{ctl.WithLogger(root.logger)}
			if o.cache || config.Cache() {
				opts = append(opts, ctl.WithMarkingCache())
			}
			st := m.Build()
			checker := ctl.NewChecker(st, opts...)
			root.logger.Info("checking formulas",
				zap.String("model", m.Name),
				zap.Int("states", st.Len()),
				zap.Int("transitions", st.Transitions()),
				zap.Int("formulas", len(fs)),
			)

			verdicts, err := checker.CheckAll(cmd.Context(), fs...)
			if err != nil {
				return err
			}

			if o.dotPath != "" {
				if err := writeDotFile(o.dotPath, st, checker.Marking(fs[0])); err != nil {
					return err
				}
			}

			if o.json {
				report := checkReport{Model: m.Name, Initial: st.InitialState()}
				for i, f := range fs {
					report.Results = append(report.Results, checkResult{
						Formula: f.String(),
						Holds:   verdicts[i],
						States:  checker.Marking(f).States(),
					})
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}

			writeVerdicts(cmd.OutOrStdout(), args, verdicts)
			return nil
		},
	}

	checkCmd.Flags().StringVarP(&o.model, "model", "m", "", "built-in model to check against; defaults to CTL_DEFAULT_MODEL or triangle")
	checkCmd.Flags().BoolVar(&o.json, "json", false, "print a JSON report")
	checkCmd.Flags().StringVar(&o.dotPath, "dot", "", "write the model as a DOT graph with the first formula's states highlighted")
	checkCmd.Flags().BoolVar(&o.cache, "cache", false, "reuse markings of shared subformulas; also enabled by CTL_CACHE")
	return checkCmd
}

func writeVerdicts(w io.Writer, inputs []string, verdicts []bool) {
	for i, holds := range verdicts {
		verdict := "fails"
		if holds {
			verdict = "holds"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", verdict, strings.Join(strings.Fields(inputs[i]), " "))
	}
}

func writeDotFile(path string, st *ctl.Structure[string], highlight ctl.Marking[string]) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	st.WriteDot(file, highlight)
	return nil
}
