package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldrules/pkg/ruleset"
)

func newRulesCmd(a *app) *cobra.Command {
	var catalog bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List rulesets and their field rules",
		Long: `Rules prints every ruleset in the file with its fields and the rules bound
to them in run order. With --catalog it prints the rule names a file may use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if catalog {
				for _, name := range ruleset.RuleNames() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			set, err := a.loadRules()
			if err != nil {
				return err
			}
			for _, name := range set.Names() {
				rs, err := set.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)

				var field string
				var names []string
				flush := func() {
					if len(names) > 0 {
						fmt.Fprintf(out, "  %s: %s\n", field, strings.Join(names, ", "))
					}
				}
				for _, b := range rs.Bindings() {
					if b.Field != field {
						flush()
						field, names = b.Field, nil
					}
					names = append(names, b.Name)
				}
				flush()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&catalog, "catalog", false, "list the available rule names")
	return cmd
}
