package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// GradientPreview returns a block of width cells sampling the stops evenly
// from left to right.
func GradientPreview(stops []RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if len(stops) == 0 {
		return strings.Repeat(" ", width)
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		sb.WriteString(bg(Sample(stops, t)))
		sb.WriteByte(' ')
	}
	sb.WriteString(ansiReset)
	return sb.String()
}

// ColourPreviewWithText returns a colour preview with text overlay.
// The text colour is chosen to have good contrast with the background.
func ColourPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	textColour := ReadableOn(c)

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg(c) + fg(textColour) + displayText + ansiReset
}

// ReadableOn returns black or white, whichever contrasts more with c.
func ReadableOn(c RGB) RGB {
	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(c, black) >= ContrastRatio(c, white) {
		return black
	}
	return white
}
