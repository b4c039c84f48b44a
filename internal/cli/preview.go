package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/swatches/internal/field"
	"github.com/jmylchreest/swatches/internal/render"
	"github.com/jmylchreest/swatches/internal/swatch"
)

// Preview output formats.
const (
	formatJSON = "json"
	formatCSS  = "css"
	formatHTML = "html"
	formatANSI = "ansi"
	formatPNG  = "png"
)

var errTerminalPNG = errors.New("refusing to write PNG to a terminal, use --out")

// formatFlag is a --format value restricted to the known preview formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Type() string { return "format" }

func (f *formatFlag) Set(s string) error {
	switch s {
	case formatJSON, formatCSS, formatHTML, formatANSI, formatPNG:
		*f = formatFlag(s)
		return nil
	}
	return fmt.Errorf("unknown format %q (want json, css, html, ansi or png)", s)
}

func newPreviewCmd(a *app) *cobra.Command {
	flags := &fieldFlags{}
	var (
		format formatFlag
		out    string
		width  int
		size   int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the list-view swatch for a value",
		Long: `Render the preview swatch shown for a field value in list views.

When a field configuration is given (--field, --palette or --default) the value
is resolved first, exactly as on save. Otherwise it is previewed as stored.

Formats:
  json  the preview descriptor with its inline style and HTML
  css   the inline style only
  html  the static preview element
  ansi  a truecolour terminal block (default when stdout is a terminal)
  png   a raster swatch (requires --out when stdout is a terminal)

Examples:
  # Preview a stored gradient in the terminal
  swatches preview --value '{"label":"Sunset","color":["#ff5500","#ffcc00"]}'

  # Resolve and write a 64px PNG swatch
  swatches preview -p brand --value '{"label":"Sunset"}' -o sunset.png --format png --size 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.preview(cmd, flags)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out) // #nosec G304 - output path is provided by the user
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if format == "" {
				format = formatJSON
				if out == "" && isTerminal(w) {
					format = formatANSI
				}
			}
			if format == formatPNG && isTerminal(w) {
				return errTerminalPNG
			}

			return writePreview(w, d, string(format), width, size)
		},
	}

	flags.register(cmd)
	cmd.Flags().Var(&format, "format", "output format (json, css, html, ansi, png)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVarP(&width, "width", "w", 8, "terminal swatch width in cells")
	cmd.Flags().IntVar(&size, "size", render.DefaultSize, "PNG swatch size in pixels")
	return cmd
}

// preview returns the descriptor for the value, resolving it first when a
// field configuration was given.
func (a *app) preview(cmd *cobra.Command, flags *fieldFlags) (swatch.RenderDescriptor, error) {
	if flags.configured() {
		stored, err := a.resolve(cmd, flags)
		if err != nil {
			return swatch.RenderDescriptor{}, err
		}
		return swatch.RenderPreview(stored), nil
	}

	raw, err := flags.rawValue(cmd)
	if err != nil {
		return swatch.RenderDescriptor{}, err
	}
	stored, err := swatch.Decode([]byte(raw))
	if err != nil {
		a.logger.Warn("value could not be decoded, previewing as empty", "error", err)
		stored = nil
	}
	return swatch.RenderPreview(stored), nil
}

func writePreview(w io.Writer, d swatch.RenderDescriptor, format string, width, size int) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(field.PreviewResponse(d))
	case formatCSS:
		_, err := fmt.Fprintln(w, d.Style())
		return err
	case formatHTML:
		_, err := fmt.Fprintln(w, d.HTML())
		return err
	case formatANSI:
		_, err := fmt.Fprintln(w, render.ANSI(d, width))
		return err
	case formatPNG:
		return render.PNG(w, d, size, size)
	default:
		return fmt.Errorf("unknown format %q (want json, css, html, ansi or png)", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
