package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldrules/pkg/config"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/ruleset"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg       Config
	log       *slog.Logger
	rulesPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "rulecheck",
		Short: "Validate documents against declarative field rules",
		Long: `rulecheck loads named rulesets from a YAML or JSON file and checks
documents against them. Each document is reported with the first rule it
breaks, as "<path>: <message>".`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.PersistentFlags().StringVar(&a.rulesPath, "rules", "", "ruleset file (env RULECHECK_RULES)")

	cmd.AddCommand(
		newValidateCmd(a),
		newServeCmd(a),
		newRulesCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.rulesPath == "" {
		a.rulesPath = a.cfg.Rules
	}

	log, err := newLogger(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log.With(logger.Component("cli"))
	return nil
}

func (a *app) loadRules() (*ruleset.Set, error) {
	if a.rulesPath == "" {
		return nil, errors.New("no ruleset file: pass --rules or set RULECHECK_RULES")
	}
	set, err := ruleset.LoadFile(a.rulesPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("rulesets loaded",
		slog.String("file", a.rulesPath),
		slog.Any("rulesets", set.Names()),
	)
	return set, nil
}
