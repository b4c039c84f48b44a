package swatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// StoredValue is the persisted selection of one field instance. An empty
// selection is represented by a nil *StoredValue.
type StoredValue struct {
	Label string `json:"label"`
	Color Colour `json:"color"`
}

// Encode serializes a stored value for persistence. A nil value encodes as null.
func Encode(v *StoredValue) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Decode parses persisted data. Empty input and null decode to nil.
func Decode(data []byte) (*StoredValue, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var v StoredValue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode stored value: %w", err)
	}
	return &v, nil
}

// NormalizedValue is the canonical model of a raw field value. It keeps the
// canonical JSON text alongside the decoded sub-fields.
type NormalizedValue struct {
	// Raw is the canonical JSON text of the value; nil when nothing was given.
	Raw json.RawMessage
	// Label is the decoded label sub-field.
	Label string
	// Color is the decoded color sub-field.
	Color Colour
	// DecodeErr records why Raw could not be decoded, if it could not.
	DecodeErr error

	fields   map[string]json.RawMessage
	hasLabel bool
}

// Normalize builds a NormalizedValue from any accepted raw shape: an existing
// model, a JSON string or byte slice, a StoredValue, or a collection-like value
// (map, slice, struct) which is serialized to JSON first. It never fails;
// malformed input is recorded in DecodeErr and yields an empty value.
func Normalize(raw any) *NormalizedValue {
	var text []byte
	switch r := raw.(type) {
	case *NormalizedValue:
		if r != nil {
			return r
		}
		return &NormalizedValue{}
	case NormalizedValue:
		return &r
	case nil:
		return &NormalizedValue{}
	case string:
		text = []byte(r)
	case []byte:
		text = r
	case json.RawMessage:
		text = r
	case *StoredValue:
		if r == nil {
			return &NormalizedValue{}
		}
		b, err := json.Marshal(r)
		if err != nil {
			return &NormalizedValue{DecodeErr: fmt.Errorf("failed to encode value: %w", err)}
		}
		text = b
	default:
		b, err := json.Marshal(r)
		if err != nil {
			return &NormalizedValue{DecodeErr: fmt.Errorf("failed to encode value: %w", err)}
		}
		text = b
	}

	v := &NormalizedValue{}
	text = bytes.TrimSpace(text)
	if len(text) == 0 {
		return v
	}
	v.Raw = json.RawMessage(slices.Clone(text))
	v.decode()
	return v
}

func (v *NormalizedValue) decode() {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(v.Raw, &fields); err != nil {
		v.DecodeErr = fmt.Errorf("failed to decode value: %w", err)
		return
	}
	v.fields = fields

	if raw, ok := fields["label"]; ok {
		var label *string
		if err := json.Unmarshal(raw, &label); err == nil && label != nil {
			v.Label = *label
			v.hasLabel = true
		}
	}
	if raw, ok := fields["color"]; ok {
		if err := v.Color.UnmarshalJSON(raw); err != nil {
			v.DecodeErr = fmt.Errorf("failed to decode color: %w", err)
		}
	}
}

// IsEmpty reports whether the value has no sub-fields at all.
func (v *NormalizedValue) IsEmpty() bool {
	return v == nil || len(v.fields) == 0
}

// HasLabel reports whether the value carries a string label.
func (v *NormalizedValue) HasLabel() bool {
	return v != nil && v.hasLabel
}

// Fields returns the names of the decoded sub-fields, sorted.
func (v *NormalizedValue) Fields() []string {
	if v == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(v.fields))
}

// MissingFields returns the required sub-fields absent from the value, in
// the order given. A value that failed to decode is missing all of them.
func (v *NormalizedValue) MissingFields(required ...string) []string {
	var missing []string
	for _, name := range required {
		if v == nil || v.fields == nil {
			missing = append(missing, name)
			continue
		}
		if _, ok := v.fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Value returns the stored form of the value, or nil when it is empty.
func (v *NormalizedValue) Value() *StoredValue {
	if v.IsEmpty() {
		return nil
	}
	return &StoredValue{Label: v.Label, Color: v.Color}
}

// MarshalJSON writes the canonical raw text, or null when there is none.
// Text that is not valid JSON is written as a JSON string.
func (v NormalizedValue) MarshalJSON() ([]byte, error) {
	if len(v.Raw) == 0 {
		return []byte("null"), nil
	}
	if !json.Valid(v.Raw) {
		return json.Marshal(string(v.Raw))
	}
	return v.Raw, nil
}
