package colour

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse parses a single CSS-style colour: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa" (alpha is ignored) or a CSS named colour such as "rebeccapurple".
// The leading "#" is optional for hex forms.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("empty colour")
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: named.R, G: named.G, B: named.B}, nil
	}

	return ParseHex(s)
}

// ParseHex parses a hex colour code with or without the "#" prefix.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimSpace(hex)
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB, RGBA -> RRGGBBAA).
	if len(hex) == 3 || len(hex) == 4 {
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	}

	if len(hex) != 6 && len(hex) != 8 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 3, 4, 6 or 8 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	if len(hex) == 8 {
		if _, err := strconv.ParseUint(hex[6:8], 16, 8); err != nil {
			return RGB{}, fmt.Errorf("invalid alpha component: %w", err)
		}
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// SplitList splits a comma-delimited colour list into trimmed, non-empty items.
// "#f00, #0f0,,#00f" yields ["#f00", "#0f0", "#00f"].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
