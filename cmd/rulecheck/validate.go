package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/ruleset"
)

// errInvalid marks a run in which at least one document failed validation.
var errInvalid = errors.New("validation failed")

func newValidateCmd(a *app) *cobra.Command {
	var (
		setName  string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "validate --set NAME DOC...",
		Short: "Validate documents against a ruleset",
		Long: `Validate decodes each document (JSON, or YAML for .yaml/.yml files; "-"
reads JSON from stdin) and checks it against the named ruleset.

Each document prints one line: "ok <doc>" or "<doc>: <path>: <message>".
The exit status is 1 when any document is invalid.

Example:
  rulecheck validate --rules rules.yaml --set user alice.json bob.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, setName, parallel, args)
		},
	}
	cmd.Flags().StringVar(&setName, "set", "", "ruleset name")
	cmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "documents checked concurrently")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, name string, parallel int, docs []string) error {
	if countStdin(docs) > 1 {
		return errors.New(`stdin ("-") can be read only once`)
	}

	set, err := a.loadRules()
	if err != nil {
		return err
	}
	rs, err := set.Get(name)
	if err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	results := make([]error, len(docs))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(parallel, 1))
	for i, path := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := readDocument(path, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = rs.Validate(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, path := range docs {
		if err := results[i]; err != nil {
			failed++
			fmt.Fprintf(out, "%s: %s\n", path, err)
			a.log.Info("document invalid", logger.Document(path), logger.Ruleset(name), logger.Violation(err))
			continue
		}
		fmt.Fprintf(out, "ok %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d documents", errInvalid, failed, len(docs))
	}
	return nil
}

func countStdin(docs []string) int {
	n := 0
	for _, d := range docs {
		if d == "-" {
			n++
		}
	}
	return n
}

func readDocument(path string, stdin io.Reader) (ruleset.Document, error) {
	if path == "-" {
		return ruleset.DecodeDocument(stdin, ruleset.FormatJSON)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ruleset.DecodeDocument(f, ruleset.FormatFromPath(path))
}
