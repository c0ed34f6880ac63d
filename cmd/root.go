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
	"context"
	"fmt"

	"github.com/goatx/ctl/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	logLevel string
	logger   *zap.Logger
}

// newRootCmd builds a fresh command tree so that flag values never leak
// between executions.
func newRootCmd() *cobra.Command {
	o := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "ctlcheck",
		Short: "Check CTL formulas against Kripke structures",
		Long: `ctlcheck decides whether CTL formulas hold in the initial state of a built-in Kripke structure.
Formulas are written as s-expressions, e.g. (E (U (EX (not p0)) (AF (and p1 p2)))).
Settings are read from the environment and from the file named by CTL_ENV (default .env).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			lvl := config.LogLevel()
			if o.logLevel != "" {
				parsed, err := zapcore.ParseLevel(o.logLevel)
				if err != nil {
					return fmt.Errorf("invalid --log-level: %w", err)
				}
				lvl = parsed
			}
			core := zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(cmd.ErrOrStderr()),
				lvl,
			)
			o.logger = zap.New(core)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = o.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides CTL_LOG_LEVEL")

	rootCmd.AddCommand(newCheckCmd(o))
	rootCmd.AddCommand(newModelsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// ExecuteContext runs the ctlcheck command line with the process arguments.
func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
