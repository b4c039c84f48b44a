// Package render draws preview descriptors as images and terminal blocks.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/internal/swatch"
)

// DefaultSize is the edge length of preview images in pixels.
const DefaultSize = 32

// Stops parses the colours of a descriptor for drawing. A solid colour holding
// a comma-delimited list yields one stop per item; blank stops are skipped.
// Empty previews yield none.
func Stops(d swatch.RenderDescriptor) ([]colour.RGB, error) {
	var raw []string
	switch d.Kind {
	case swatch.KindSolid:
		raw = colour.SplitList(d.Color)
	case swatch.KindGradient:
		raw = d.Stops
	default:
		return nil, nil
	}

	stops := make([]colour.RGB, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}
		rgb, err := colour.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid stop %q: %w", s, err)
		}
		stops = append(stops, rgb)
	}
	return stops, nil
}

// Image rasterizes a descriptor into a width x height image. Gradients run
// from the top-left corner to the bottom-right corner; empty previews are
// fully transparent.
func Image(d swatch.RenderDescriptor, width, height int) (*image.NRGBA, error) {
	if width <= 0 {
		width = DefaultSize
	}
	if height <= 0 {
		height = DefaultSize
	}

	stops, err := Stops(d)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if len(stops) == 0 {
		return img, nil
	}

	span := float64(width - 1 + height - 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 0.0
			if span > 0 {
				t = float64(x+y) / span
			}
			img.Set(x, y, colour.Sample(stops, t).RGBA())
		}
	}
	return img, nil
}

// PNG writes the descriptor as a PNG image.
func PNG(w io.Writer, d swatch.RenderDescriptor, width, height int) error {
	img, err := Image(d, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// ANSI returns a terminal block for the descriptor. Empty previews and
// previews with unparseable colours render as blank cells.
func ANSI(d swatch.RenderDescriptor, width int) string {
	stops, err := Stops(d)
	if err != nil || len(stops) == 0 {
		return colour.GradientPreview(nil, width)
	}
	if len(stops) == 1 {
		return colour.ColourPreview(stops[0], width)
	}
	return colour.GradientPreview(stops, width)
}

// LabelledANSI is ANSI with the label drawn over solid swatches in a
// readable text colour. Gradients are drawn without the label.
func LabelledANSI(d swatch.RenderDescriptor, label string, width int) string {
	stops, err := Stops(d)
	if err != nil || len(stops) != 1 {
		return ANSI(d, width)
	}
	return colour.ColourPreviewWithText(stops[0], label, width)
}
