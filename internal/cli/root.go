// Package cli provides the command-line interface for swatches.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/settings"
	"github.com/jmylchreest/swatches/internal/version"
)

// app carries global flag values and the lazily built settings store.
type app struct {
	settingsPath string
	verbose      bool
	quiet        bool

	logger hclog.Logger
	store  *settings.Store
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "swatches",
		Short: "Resolve and preview colour swatch field values",
		Long: `Swatches resolves colour swatch field values against admin-configured
palettes and renders the small preview swatches shown in list views.

Settings are read from --settings or the ` + settings.EnvSettingsPath + ` environment
variable, as JSON or YAML, optionally compressed with xz, gzip or bzip2.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = a.newLogger(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.settingsPath, "settings", "s", "",
		"settings file (default: $"+settings.EnvSettingsPath+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newPreviewCmd(a))
	rootCmd.AddCommand(newPalettesCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newPluginCmd(a))

	return rootCmd
}

func (a *app) level() hclog.Level {
	switch {
	case a.verbose:
		return hclog.Debug
	case a.quiet:
		return hclog.Error
	default:
		return hclog.Warn
	}
}

func (a *app) newLogger(cmd *cobra.Command) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatches",
		Output: cmd.ErrOrStderr(),
		Level:  a.level(),
	})
}

// settingsStore builds the store on first use so commands that never read
// settings do not fail on a bad settings path.
func (a *app) settingsStore() (*settings.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if a.logger == nil {
		a.logger = hclog.NewNullLogger()
	}

	store, err := settings.NewBuilder().
		WithEnvConfig().
		WithFile(a.settingsPath).
		WithLogger(a.logger.Named("settings")).
		Build()
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
