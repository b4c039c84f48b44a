package swatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PaletteEntry is one selectable option in a palette.
type PaletteEntry struct {
	Label     string `json:"label" yaml:"label"`
	Color     Colour `json:"color" yaml:"color"`
	IsDefault bool   `json:"default" yaml:"default"`

	// Position is the 1-based list index of the entry. Palettes configured
	// as objects with integer keys use key+1, matching list semantics.
	Position int `json:"-" yaml:"-"`
	// Key is the explicit key of an entry in a palette configured as an
	// object with non-integer keys. Empty for list entries.
	Key string `json:"-" yaml:"-"`
	// Scalar marks an entry configured as a bare value instead of an object.
	// Such entries keep their position but are never selected.
	Scalar bool `json:"-" yaml:"-"`
	// Raw holds the bare value of a scalar entry.
	Raw string `json:"-" yaml:"-"`
}

// ID returns the identifier compared against a field's default index: the
// explicit key when present, otherwise the 1-based position.
func (e PaletteEntry) ID() string {
	if e.Key != "" {
		return e.Key
	}
	return strconv.Itoa(e.Position)
}

// Palette is an ordered set of palette entries. Lookups are by label.
type Palette []PaletteEntry

// Labels returns the labels of all structured entries in order.
func (p Palette) Labels() []string {
	labels := make([]string, 0, len(p))
	for _, e := range p {
		if !e.Scalar {
			labels = append(labels, e.Label)
		}
	}
	return labels
}

// Default returns the first structured entry flagged as default, if any.
func (p Palette) Default() (PaletteEntry, bool) {
	for _, e := range p {
		if !e.Scalar && e.IsDefault {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// entryJSON is the wire form of a structured entry. The default flag is
// decoded loosely because CMS checkbox columns store "1" or "".
type entryJSON struct {
	Label   string          `json:"label"`
	Color   Colour          `json:"color"`
	Default json.RawMessage `json:"default,omitempty"`
}

// UnmarshalJSON accepts either a JSON array (positions 1..n) or a JSON
// object whose key order is preserved.
func (p *Palette) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read palette: %w", err)
	}

	var entries Palette
	switch tok {
	case nil:
		*p = nil
		return nil
	case json.Delim('['):
		for dec.More() {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("failed to read palette entry %d: %w", len(entries)+1, err)
			}
			entry, err := decodeEntryJSON(raw)
			if err != nil {
				return fmt.Errorf("palette entry %d: %w", len(entries)+1, err)
			}
			entry.Position = len(entries) + 1
			entries = append(entries, entry)
		}
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("failed to read palette key: %w", err)
			}
			key, _ := keyTok.(string)
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return fmt.Errorf("failed to read palette entry %q: %w", key, err)
			}
			entry, err := decodeEntryJSON(raw)
			if err != nil {
				return fmt.Errorf("palette entry %q: %w", key, err)
			}
			entry.Position, entry.Key = positionForKey(key, len(entries)+1)
			entries = append(entries, entry)
		}
	default:
		return fmt.Errorf("palette must be an array or object, got %v", tok)
	}

	*p = entries
	return nil
}

func decodeEntryJSON(raw json.RawMessage) (PaletteEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return PaletteEntry{Scalar: true, Raw: scalarText(raw)}, nil
	}

	var wire entryJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return PaletteEntry{}, err
	}
	return PaletteEntry{
		Label:     wire.Label,
		Color:     wire.Color,
		IsDefault: looseBool(wire.Default),
	}, nil
}

func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// looseBool interprets checkbox-style values: true, 1, "1", "true", "on", "yes".
func looseBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	return truthy(s)
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// positionForKey maps an object key to a position and explicit key.
// Canonical non-negative integer keys behave like list indices.
func positionForKey(key string, ordinal int) (int, string) {
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && strconv.Itoa(n) == key {
		return n + 1, ""
	}
	return ordinal, key
}

// MarshalJSON writes a keyed palette as an object in order and any other
// palette as an array.
func (p Palette) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}

	keyed := false
	for _, e := range p {
		if e.Key != "" {
			keyed = true
			break
		}
	}

	var buf bytes.Buffer
	if !keyed {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	for i, e := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if keyed {
			key := e.Key
			if key == "" {
				key = strconv.Itoa(e.Position - 1)
			}
			k, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
		}
		b, err := marshalEntry(e)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	if !keyed {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func marshalEntry(e PaletteEntry) ([]byte, error) {
	if e.Scalar {
		return json.Marshal(e.Raw)
	}
	return json.Marshal(struct {
		Label   string `json:"label"`
		Color   Colour `json:"color"`
		Default bool   `json:"default"`
	}{e.Label, e.Color, e.IsDefault})
}

// UnmarshalYAML accepts a sequence or a mapping, preserving mapping order.
func (p *Palette) UnmarshalYAML(node *yaml.Node) error {
	var entries Palette
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = nil
			return nil
		}
		return fmt.Errorf("line %d: palette must be a sequence or mapping", node.Line)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			entry, err := decodeEntryYAML(item)
			if err != nil {
				return err
			}
			entry.Position = len(entries) + 1
			entries = append(entries, entry)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			entry, err := decodeEntryYAML(node.Content[i+1])
			if err != nil {
				return fmt.Errorf("palette entry %q: %w", key, err)
			}
			entry.Position, entry.Key = positionForKey(key, len(entries)+1)
			entries = append(entries, entry)
		}
	default:
		return fmt.Errorf("line %d: palette must be a sequence or mapping", node.Line)
	}

	*p = entries
	return nil
}

func decodeEntryYAML(node *yaml.Node) (PaletteEntry, error) {
	if node.Kind != yaml.MappingNode {
		return PaletteEntry{Scalar: true, Raw: node.Value}, nil
	}

	var wire struct {
		Label   string    `yaml:"label"`
		Color   Colour    `yaml:"color"`
		Default yaml.Node `yaml:"default"`
	}
	if err := node.Decode(&wire); err != nil {
		return PaletteEntry{}, err
	}
	return PaletteEntry{
		Label:     wire.Label,
		Color:     wire.Color,
		IsDefault: truthy(wire.Default.Value),
	}, nil
}
