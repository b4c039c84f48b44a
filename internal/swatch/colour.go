package swatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatches/internal/colour"
)

// Colour is the colour of a palette entry or stored value. It is either a
// scalar string holding one or more comma-delimited colour codes, or an
// ordered list of stops for multi-colour entries.
//
// The zero value is an empty scalar.
type Colour struct {
	scalar string
	stops  []string
	list   bool
}

// Solid returns a scalar colour.
func Solid(s string) Colour {
	return Colour{scalar: s}
}

// Stops returns a list colour with the given stops in order.
func Stops(stops ...string) Colour {
	return Colour{stops: slices.Clone(stops), list: true}
}

// IsZero reports whether there is nothing to draw: a blank scalar or a list
// without stops.
func (c Colour) IsZero() bool {
	if c.list {
		return len(c.stops) == 0
	}
	return strings.TrimSpace(c.scalar) == ""
}

// Values returns the individual colour codes for validation and rasterizing.
// A scalar is split on commas; blank items are dropped.
func (c Colour) Values() []string {
	if !c.list {
		return colour.SplitList(c.scalar)
	}
	out := make([]string, 0, len(c.stops))
	for _, s := range c.stops {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Entries returns the stops of a list colour as configured, blanks included.
// A scalar has none.
func (c Colour) Entries() []string {
	if !c.list {
		return nil
	}
	return slices.Clone(c.stops)
}

// String returns the scalar text, or the stops joined with commas.
func (c Colour) String() string {
	if c.list {
		return strings.Join(c.stops, ",")
	}
	return c.scalar
}

// Equal reports whether two colours have the same shape and content.
func (c Colour) Equal(o Colour) bool {
	if c.list != o.list {
		return false
	}
	if c.list {
		return slices.Equal(c.stops, o.stops)
	}
	return c.scalar == o.scalar
}

// MarshalJSON writes a scalar as a JSON string and a list as an array of strings.
func (c Colour) MarshalJSON() ([]byte, error) {
	if c.list {
		stops := c.stops
		if stops == nil {
			stops = []string{}
		}
		return json.Marshal(stops)
	}
	return json.Marshal(c.scalar)
}

// UnmarshalJSON accepts a string, an array of strings, or an array of
// {"color": "..."} objects as stored by multi-colour palette entries.
func (c *Colour) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Colour{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Solid(s)
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		stops := make([]string, 0, len(items))
		for i, item := range items {
			s, err := stopFromJSON(item)
			if err != nil {
				return fmt.Errorf("colour stop %d: %w", i, err)
			}
			stops = append(stops, s)
		}
		*c = Colour{stops: stops, list: true}
		return nil
	default:
		return fmt.Errorf("invalid colour value %s", data)
	}
}

func stopFromJSON(item json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(item, &s); err == nil {
		return s, nil
	}

	var obj struct {
		Color *string `json:"color"`
	}
	if err := json.Unmarshal(item, &obj); err != nil {
		return "", fmt.Errorf("expected string or object: %w", err)
	}
	if obj.Color == nil {
		return "", fmt.Errorf("object has no color key")
	}
	return *obj.Color, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML settings files.
func (c *Colour) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*c = Colour{}
			return nil
		}
		*c = Solid(node.Value)
		return nil
	case yaml.SequenceNode:
		stops := make([]string, 0, len(node.Content))
		for i, item := range node.Content {
			s, err := stopFromYAML(item)
			if err != nil {
				return fmt.Errorf("colour stop %d: %w", i, err)
			}
			stops = append(stops, s)
		}
		*c = Colour{stops: stops, list: true}
		return nil
	default:
		return fmt.Errorf("line %d: invalid colour value", node.Line)
	}
}

func stopFromYAML(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "color" && node.Content[i+1].Kind == yaml.ScalarNode {
				return node.Content[i+1].Value, nil
			}
		}
		return "", fmt.Errorf("line %d: mapping has no color key", node.Line)
	default:
		return "", fmt.Errorf("line %d: expected scalar or mapping", node.Line)
	}
}
