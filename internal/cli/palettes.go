package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatches/internal/field"
	"github.com/jmylchreest/swatches/internal/render"
	"github.com/jmylchreest/swatches/internal/settings"
	"github.com/jmylchreest/swatches/internal/swatch"
)

func newPalettesCmd(a *app) *cobra.Command {
	var (
		swatches bool
		width    int
	)

	cmd := &cobra.Command{
		Use:   "palettes [name]",
		Short: "List configured palettes or the entries of one palette",
		Long: `List the global colours and shared palettes, or the entries of one palette.

The global colours are listed under the name "` + settings.GlobalPalette + `". Entry ids are
the 1-based position for list palettes and the key for keyed palettes; field
defaults refer to entries by this id.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.settingsStore()
			if err != nil {
				return err
			}
			snap := store.Snapshot()

			if !cmd.Flags().Changed("swatches") {
				swatches = isTerminal(cmd.OutOrStdout())
			}

			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), paletteTable(snap, swatches, width).Render())
				return nil
			}

			name := args[0]
			p, ok := settings.Lookup(snap, name)
			if !ok {
				var names []string
				for _, np := range settings.Palettes(snap) {
					names = append(names, np.Name)
				}
				return fmt.Errorf("palette %q not found (available: %s)", name, strings.Join(names, ", "))
			}
			fmt.Fprint(cmd.OutOrStdout(), entryTable(name, p, swatches, width).Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&swatches, "swatches", false, "show colour swatches (default: when stdout is a terminal)")
	cmd.Flags().IntVarP(&width, "width", "w", 6, "swatch width in cells")
	return cmd
}

func paletteTable(s *swatch.Settings, swatches bool, width int) *Table {
	headers := []string{"NAME", "ENTRIES", "DEFAULT"}
	if swatches {
		headers = append(headers, "SWATCHES")
	}
	t := NewTable(headers)

	for _, np := range settings.Palettes(s) {
		name, p := np.Name, np.Palette
		info := field.PaletteInfo(name, p)

		def := "-"
		if d, ok := p.Default(); ok {
			def = d.Label
		}
		row := []string{name, strconv.Itoa(len(info.Entries)), def}
		if swatches {
			var cells []string
			for _, e := range p {
				if e.Scalar {
					continue
				}
				cells = append(cells, entrySwatch(e, width/2))
			}
			row = append(row, strings.Join(cells, ""))
		}
		t.AddRow(row)
	}
	return t
}

func entryTable(name string, p swatch.Palette, swatches bool, width int) *Table {
	headers := []string{"ID", "LABEL", "COLOR", "DEFAULT"}
	if swatches {
		headers = append(headers, "SWATCH")
	}
	t := NewTable(headers)

	info := field.PaletteInfo(name, p)
	entries := make(map[string]swatch.PaletteEntry, len(p))
	for _, e := range p {
		entries[e.ID()] = e
	}

	for _, e := range info.Entries {
		def := ""
		if e.Default {
			def = "yes"
		}
		row := []string{e.ID, e.Label, e.Color, def}
		if swatches {
			row = append(row, labelledSwatch(entries[e.ID], width))
		}
		t.AddRow(row)
	}
	return t
}

func entrySwatch(e swatch.PaletteEntry, width int) string {
	if width < 1 {
		width = 1
	}
	d := swatch.RenderPreview(&swatch.StoredValue{Label: e.Label, Color: e.Color})
	return render.ANSI(d, width)
}

func labelledSwatch(e swatch.PaletteEntry, width int) string {
	d := swatch.RenderPreview(&swatch.StoredValue{Label: e.Label, Color: e.Color})
	return render.LabelledANSI(d, e.Label, max(width, len(e.Label)+2))
}
