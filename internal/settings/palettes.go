package settings

import (
	"strings"

	"github.com/jmylchreest/swatches/internal/swatch"
)

// GlobalPalette is the name the global colour list is listed under.
const GlobalPalette = "colors"

// SharedPrefix qualifies a shared palette name. It is only needed for a shared
// palette named GlobalPalette, which would otherwise be hidden.
const SharedPrefix = "palettes/"

// NamedPalette is a palette with the name it is listed under.
type NamedPalette struct {
	Name    string
	Palette swatch.Palette
}

// Palettes lists the global colours first, then the shared palettes by name.
// Every listed name is unique and resolves through Lookup.
func Palettes(s *swatch.Settings) []NamedPalette {
	if s == nil {
		return []NamedPalette{{Name: GlobalPalette}}
	}

	out := []NamedPalette{{Name: GlobalPalette, Palette: s.Colors}}
	for _, name := range s.PaletteNames() {
		listed := name
		if name == GlobalPalette || strings.HasPrefix(name, SharedPrefix) {
			listed = SharedPrefix + name
		}
		out = append(out, NamedPalette{Name: listed, Palette: s.Palettes[name]})
	}
	return out
}

// Lookup finds a palette by listed name. GlobalPalette is the global colour
// list; a name carrying SharedPrefix always refers to a shared palette.
func Lookup(s *swatch.Settings, name string) (swatch.Palette, bool) {
	if s == nil {
		return nil, name == GlobalPalette
	}
	if name == GlobalPalette {
		return s.Colors, true
	}
	if shared, ok := strings.CutPrefix(name, SharedPrefix); ok {
		if p, ok := s.Palettes[shared]; ok {
			return p, true
		}
	}
	p, ok := s.Palettes[name]
	return p, ok
}
