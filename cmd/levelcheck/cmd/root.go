package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/logfilter/foundation/core/config"
	lferror "github.com/msto63/logfilter/foundation/core/error"
	"github.com/msto63/logfilter/foundation/core/filter"
	"github.com/msto63/logfilter/foundation/core/log"
	"github.com/msto63/logfilter/pkg/core/logging"
)

type options struct {
	cfgFile   string
	section   string
	envPrefix string
	format    string
	verbose   bool
}

// NewRootCmd builds the levelcheck command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "levelcheck",
		Short: "Prüft Kategorie-Loglevel gegen eine Konfiguration",
		Long: `levelcheck zeigt, welches Mindest-Loglevel für eine Logger-Kategorie
gilt und warum.

Die Kategorie wird von hinten nach vorne gekürzt ("A.B.C", "A.B", "A"),
bis ein konfigurierter Eintrag passt. Danach gilt "Default", sonst
Information. Ohne konfigurierte Einträge wird alles ausgegeben.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "Config-Datei (default: ./logging.toml, ./appsettings.yaml, ...)")
	root.PersistentFlags().StringVar(&opts.section, "section", config.DefaultSection, "Pfad der Level-Tabelle")
	root.PersistentFlags().StringVar(&opts.envPrefix, "env-prefix", "", "Prefix für Umgebungsvariablen (<PREFIX>_LOGGING_LOGLEVEL_DEFAULT)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose Output")

	root.AddCommand(
		newResolveCmd(opts),
		newMatrixCmd(opts),
		newLogCmd(opts),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// diagnostics is the tool's own logger on stderr
func (o *options) diagnostics(cmd *cobra.Command) *log.Logger {
	threshold := log.LevelWarning
	if o.verbose {
		threshold = log.LevelDebug
	}
	return log.NewWithConfig(log.Config{
		Category:  "levelcheck",
		Sink:      log.NewWriterSink(cmd.ErrOrStderr()),
		Filter:    filter.Threshold(threshold),
		Formatter: &log.TextFormatter{DisableTimestamp: true},
	})
}

// loadProvider loads the configuration and builds a provider over sink.
// Skipped level entries are reported as warnings, not failures.
func (o *options) loadProvider(cmd *cobra.Command, sink log.Sink) (*logging.Provider, error) {
	diag := o.diagnostics(cmd)

	var cfg *config.Config
	var err error
	if o.cfgFile != "" {
		cfg, err = config.LoadWithOptions(o.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: o.envPrefix,
		})
	} else {
		discovery := config.DefaultDiscoveryOptions()
		discovery.EnvPrefix = o.envPrefix
		cfg, err = config.Discover(discovery)
	}
	if err != nil {
		return nil, err
	}
	diag.Logf(log.LevelDebug, "using %s", cfg)

	provider, err := logging.NewFromConfig(cfg, logging.LoggerConfig{
		Section: o.section,
		Format:  o.format,
	}, sink)
	if provider == nil {
		return nil, err
	}
	if err != nil {
		reportSkipped(diag, err)
	}

	diag.Logf(log.LevelDebug, "%d level entries in %s", provider.Levels().Len(), o.section)
	return provider, nil
}

// reportSkipped logs one warning per skipped level entry
func reportSkipped(diag *log.Logger, err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, branch := range joined.Unwrap() {
			reportSkipped(diag, branch)
		}
		return
	}

	var entry *lferror.Error
	if errors.As(err, &entry) {
		diag.Logf(log.LevelWarning, "skipped: %s", entry.Message())
		return
	}
	diag.Warning(err.Error())
}

func validateCategories(args []string) error {
	for _, category := range args {
		if err := filter.ValidateCategory(category); err != nil {
			return fmt.Errorf("argument %q: %w", category, err)
		}
	}
	return nil
}
