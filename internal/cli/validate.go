package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/settings"
	"github.com/jmylchreest/swatches/internal/swatch"
)

func newValidateCmd(a *app) *cobra.Command {
	var fieldPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check settings for entries that cannot be selected or rendered",
		Long: `Check the settings file for palette entries that cannot be selected or
rendered: bare values, missing or duplicate labels, and colours that do not
parse. With --field, the field configuration's active palette is checked too.

Problems are reported one per line; the command fails when any are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.settingsStore()
			if err != nil {
				return err
			}
			snap := store.Snapshot()
			problems := settings.Validate(snap)

			if fieldPath != "" {
				cfg, err := settings.LoadField(fieldPath)
				if err != nil {
					return err
				}
				if !cfg.UseSharedConfig {
					problems = append(problems, settings.ValidatePalette("options", cfg.Options)...)
				}
				if cfg.Default.IsSet() && !hasEntry(swatch.ActivePalette(cfg, snap), cfg.Default) {
					problems = append(problems, settings.Problem{
						Palette: "field",
						Entry:   cfg.Default.String(),
						Message: "default does not match any entry of the active palette",
					})
				}
			}

			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, p.String())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) found", len(problems))
			}
			if !a.quiet {
				fmt.Fprintln(out, "settings OK")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldPath, "field", "f", "", "also check a field configuration file")
	return cmd
}

func hasEntry(p swatch.Palette, def swatch.DefaultIndex) bool {
	for _, e := range p {
		if !e.Scalar && def.Matches(e.ID()) {
			return true
		}
	}
	return false
}
