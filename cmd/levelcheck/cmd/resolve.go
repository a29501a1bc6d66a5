package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/logfilter/foundation/core/log"
)

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CATEGORY...",
		Short: "Zeigt das wirksame Level je Kategorie",
		Long: `Zeigt für jede Kategorie das wirksame Mindest-Level, den passenden
Konfigurationsschlüssel und die Herkunft der Entscheidung
(exact, prefix, default, fallback, unconfigured).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCategories(args); err != nil {
				return err
			}

			provider, err := opts.loadProvider(cmd, log.Discard)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-40s %-12s %-12s %s\n", "CATEGORY", "LEVEL", "SOURCE", "KEY")
			for _, category := range args {
				d := provider.Resolve(category)
				key := d.Key
				if key == "" {
					key = "-"
				}
				fmt.Fprintf(out, "%-40s %-12s %-12s %s\n", category, d.Level, d.Source, key)
			}
			return nil
		},
	}
}
