package swatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the process-wide configuration: named shared palettes and the
// global default colour list. A Settings value is treated as an immutable
// snapshot once published.
type Settings struct {
	Palettes map[string]Palette `json:"palettes" yaml:"palettes"`
	Colors   Palette            `json:"colors" yaml:"colors"`
}

// PaletteNames returns the names of all shared palettes, sorted.
func (s *Settings) PaletteNames() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.Palettes))
}

// FieldConfig is the configuration of one field instance.
type FieldConfig struct {
	// UseSharedConfig selects a shared palette from Settings instead of Options.
	UseSharedConfig bool `json:"useConfigFile" yaml:"useConfigFile"`
	// PaletteName names the shared palette when UseSharedConfig is set.
	PaletteName string `json:"palette,omitempty" yaml:"palette"`
	// Options is the inline palette.
	Options Palette `json:"options" yaml:"options"`
	// Default identifies the fallback entry by 1-based position or key.
	Default DefaultIndex `json:"default" yaml:"default"`
}

// PaletteSource describes where an active palette came from.
type PaletteSource string

const (
	SourceInline   PaletteSource = "inline"
	SourceShared   PaletteSource = "shared"
	SourceFallback PaletteSource = "fallback"
)

// ActivePalette returns the palette a field resolves against. A shared
// palette that is missing or empty falls back to the global colour list.
func ActivePalette(field FieldConfig, settings *Settings) Palette {
	p, _ := selectPalette(field, settings)
	return p
}

func selectPalette(field FieldConfig, settings *Settings) (Palette, PaletteSource) {
	if !field.UseSharedConfig {
		return field.Options, SourceInline
	}
	if settings == nil {
		return nil, SourceFallback
	}
	if p, ok := settings.Palettes[field.PaletteName]; ok && len(p) > 0 {
		return p, SourceShared
	}
	return settings.Colors, SourceFallback
}

// DefaultIndex identifies a field's default entry. It holds either a
// position (an integer) or a key (a string); the zero value is unset.
type DefaultIndex struct {
	value string
	set   bool
}

// DefaultAt returns a DefaultIndex for a 1-based position.
func DefaultAt(position int) DefaultIndex {
	return DefaultIndex{value: strconv.Itoa(position), set: true}
}

// DefaultKey returns a DefaultIndex for an explicit key or numeric string.
// An empty key is unset.
func DefaultKey(key string) DefaultIndex {
	return DefaultIndex{value: key, set: key != ""}
}

// IsSet reports whether a default is configured.
func (d DefaultIndex) IsSet() bool {
	return d.set
}

// String returns the configured position or key, or "" when unset.
func (d DefaultIndex) String() string {
	return d.value
}

// Equal reports whether two indexes hold the same configured value.
func (d DefaultIndex) Equal(o DefaultIndex) bool {
	return d == o
}

// Matches reports whether an entry identifier equals the default. Numeric
// values compare numerically ("2" matches "2.0" and " 2"), anything else
// compares as an exact string.
func (d DefaultIndex) Matches(id string) bool {
	if !d.set {
		return false
	}
	a, aErr := strconv.ParseFloat(strings.TrimSpace(d.value), 64)
	b, bErr := strconv.ParseFloat(strings.TrimSpace(id), 64)
	if aErr == nil && bErr == nil {
		return a == b
	}
	return d.value == id
}

// MarshalJSON writes unset as null, integers as numbers and keys as strings.
func (d DefaultIndex) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	if n, err := strconv.Atoi(d.value); err == nil && strconv.Itoa(n) == d.value {
		return []byte(d.value), nil
	}
	return json.Marshal(d.value)
}

// UnmarshalJSON accepts null, a number or a string.
func (d *DefaultIndex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*d = DefaultIndex{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DefaultKey(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("default must be a number, string or null: %w", err)
		}
		*d = DefaultIndex{value: n.String(), set: true}
	}
	return nil
}

// UnmarshalYAML accepts null, a number or a string.
func (d *DefaultIndex) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: default must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*d = DefaultIndex{}
		return nil
	}
	*d = DefaultKey(node.Value)
	return nil
}
