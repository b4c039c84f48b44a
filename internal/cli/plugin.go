package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/field"
	"github.com/jmylchreest/swatches/pkg/plugin"
)

func newPluginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Run or inspect the field type as an out-of-process plugin",
		Long: `Run the colour swatches field type as a go-plugin server, or inspect one.

Hosts launch "swatches plugin serve" and talk to it over net/rpc using the
handshake published in the plugin package.`,
	}

	cmd.AddCommand(newPluginServeCmd(a))
	cmd.AddCommand(newPluginInfoCmd(a))
	cmd.AddCommand(newPluginCheckCmd(a))
	return cmd
}

func newPluginServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the field type over go-plugin",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// go-plugin forwards structured stderr lines to the host logger.
			logger := hclog.New(&hclog.LoggerOptions{
				Name:       "swatches",
				Output:     os.Stderr,
				Level:      a.level(),
				JSONFormat: true,
			})
			a.logger = logger

			store, err := a.settingsStore()
			if err != nil {
				return err
			}
			plugin.Serve(field.New(store, logger), logger)
			return nil
		},
	}
}

func newPluginInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the field type's plugin metadata as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := field.New(nil, a.logger).GetMetadata()
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

func newPluginCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <path> [args...]",
		Short: "Launch a field type plugin and list what it serves",
		Long: `Launch a field type plugin binary, perform the handshake, and print its
metadata and palettes. Extra arguments are passed to the binary, for example:

  swatches plugin check ./swatches plugin serve`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := plugin.Connect(args[0], a.verbose, args[1:]...)
			if err != nil {
				return err
			}
			defer conn.Close()

			info := conn.GetMetadata()
			if info.ProtocolVersion != plugin.ProtocolVersion {
				a.logger.Warn("plugin protocol version differs",
					"plugin", info.ProtocolVersion, "host", plugin.ProtocolVersion)
			}

			palettes, err := conn.Palettes(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list palettes: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (protocol %s)\n", info.Name, info.Version, info.ProtocolVersion)
			t := NewTable([]string{"PALETTE", "ENTRIES"})
			for _, p := range palettes {
				t.AddRow([]string{p.Name, fmt.Sprint(len(p.Entries))})
			}
			fmt.Fprint(out, t.Render())
			return nil
		},
	}
}
