package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/settings"
	"github.com/jmylchreest/swatches/internal/swatch"
)

// fieldFlags selects the field configuration and the submitted value.
type fieldFlags struct {
	fieldPath   string
	paletteName string
	defaultID   string
	value       string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.fieldPath, "field", "f", "", "field configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&f.paletteName, "palette", "p", "", "use the named shared palette")
	cmd.Flags().StringVarP(&f.defaultID, "default", "d", "", "default entry id (1-based position or key)")
	cmd.Flags().StringVar(&f.value, "value", "", `raw field value as JSON, or "-" to read stdin`)
}

// configured reports whether any field configuration was given.
func (f *fieldFlags) configured() bool {
	return f.fieldPath != "" || f.paletteName != "" || f.defaultID != ""
}

// fieldConfig loads the field file and applies flag overrides on top.
func (f *fieldFlags) fieldConfig() (swatch.FieldConfig, error) {
	var cfg swatch.FieldConfig
	if f.fieldPath != "" {
		loaded, err := settings.LoadField(f.fieldPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if f.paletteName != "" {
		cfg.UseSharedConfig = true
		cfg.PaletteName = f.paletteName
	}
	if f.defaultID != "" {
		if n, err := strconv.Atoi(f.defaultID); err == nil {
			cfg.Default = swatch.DefaultAt(n)
		} else {
			cfg.Default = swatch.DefaultKey(f.defaultID)
		}
	}
	return cfg, nil
}

// rawValue returns the submitted value text, reading stdin for "-".
func (f *fieldFlags) rawValue(cmd *cobra.Command) (string, error) {
	if f.value != "-" {
		return f.value, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read value from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// resolve re-resolves the submitted value against the active palette.
func (a *app) resolve(cmd *cobra.Command, f *fieldFlags) (*swatch.StoredValue, error) {
	cfg, err := f.fieldConfig()
	if err != nil {
		return nil, err
	}
	raw, err := f.rawValue(cmd)
	if err != nil {
		return nil, err
	}
	store, err := a.settingsStore()
	if err != nil {
		return nil, err
	}

	value := swatch.Normalize(raw)
	if value.DecodeErr != nil {
		a.logger.Warn("value could not be decoded, treating as empty", "error", value.DecodeErr)
	}

	resolver := swatch.NewResolver(swatch.WithLogger(a.logger.Named("resolver")))
	return resolver.Resolve(value, cfg, store.Snapshot()), nil
}

func newResolveCmd(a *app) *cobra.Command {
	flags := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a submitted value against the live palette",
		Long: `Resolve a submitted field value the way it is resolved at save time.

A value whose label matches a palette entry takes that entry's current colour.
Otherwise the field's default entry is used, if one is configured. The stored
JSON is printed, or null when nothing would be stored.

Examples:
  # Resolve against a field configuration file
  swatches resolve --field field.json --value '{"label":"Primary"}'

  # Resolve against a shared palette with a default entry
  swatches resolve --palette brand --default 2 --value '{"label":"Gone"}'

  # Read the value from stdin
  echo '{"label":"Sunset"}' | swatches resolve -p brand --value -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := a.resolve(cmd, flags)
			if err != nil {
				return err
			}
			data, err := swatch.Encode(stored)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
