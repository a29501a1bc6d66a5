package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/logfilter/foundation/core/log"
)

func newLogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log CATEGORY LEVEL MESSAGE...",
		Short: "Schreibt eine Nachricht durch den Filter nach stdout",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := args[0]
			if err := validateCategories(args[:1]); err != nil {
				return err
			}

			level, err := log.ParseLevel(args[1])
			if err != nil {
				return err
			}

			provider, err := opts.loadProvider(cmd, log.NewWriterSink(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			logger := provider.CreateLogger(category)
			if !logger.IsEnabled(level) {
				opts.diagnostics(cmd).Logf(log.LevelDebug, "dropped %s message for %s", level, category)
				return nil
			}
			return logger.LogErr(level, strings.Join(args[2:], " "))
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "plain", "Ausgabeformat: plain, text, json")
	return cmd
}
