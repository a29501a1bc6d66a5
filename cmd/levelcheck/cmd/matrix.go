package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/logfilter/foundation/core/log"
)

var (
	colorAccepted = lipgloss.Color("#10B981")
	colorRejected = lipgloss.Color("#EF4444")
	colorMuted    = lipgloss.Color("#6B7280")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	levelStyle    = lipgloss.NewStyle().Width(12)
	acceptedStyle = lipgloss.NewStyle().Foreground(colorAccepted)
	rejectedStyle = lipgloss.NewStyle().Foreground(colorRejected)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

func newMatrixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix CATEGORY",
		Short: "Zeigt für alle sechs Level, ob sie ausgegeben werden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := args[0]
			if err := validateCategories(args); err != nil {
				return err
			}

			provider, err := opts.loadProvider(cmd, log.Discard)
			if err != nil {
				return err
			}

			logger := provider.CreateLogger(category)
			d := provider.Resolve(category)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(category))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("minimum %s via %s %s", d.Level, d.Source, d.Key)))

			for _, level := range log.AllLevels() {
				verdict := rejectedStyle.Render("rejected")
				if logger.IsEnabled(level) {
					verdict = acceptedStyle.Render("accepted")
				}
				fmt.Fprintf(out, "  %s %s\n", levelStyle.Render(level.String()), verdict)
			}
			return nil
		},
	}
}
