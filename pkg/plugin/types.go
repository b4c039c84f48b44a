package plugin

import "encoding/json"

// PluginInfo contains metadata about a field type plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
}

// NormalizeRequest carries a raw field value as submitted or stored.
type NormalizeRequest struct {
	// Value is the raw value: a JSON object, a JSON string holding an
	// encoded object, or empty.
	Value json.RawMessage `json:"value"`
	// Required lists sub-fields the host's validation requires.
	Required []string `json:"required,omitempty"`
}

// NormalizeResponse is the canonical form of a raw value.
type NormalizeResponse struct {
	Value       json.RawMessage `json:"value"`
	Fields      []string        `json:"fields,omitempty"`
	Missing     []string        `json:"missing,omitempty"`
	DecodeError string          `json:"decode_error,omitempty"`
}

// SerializeRequest asks for the value to persist for a submission.
type SerializeRequest struct {
	Value json.RawMessage `json:"value"`
	// Field is the field-instance configuration as JSON.
	Field json.RawMessage `json:"field"`
}

// SerializeResponse carries the stored value; "null" when nothing is stored.
type SerializeResponse struct {
	Stored json.RawMessage `json:"stored"`
}

// PreviewResponse describes the list-view swatch for a stored value.
type PreviewResponse struct {
	Kind  string   `json:"kind"`
	Color string   `json:"color,omitempty"`
	Stops []string `json:"stops,omitempty"`
	Style string   `json:"style"`
	HTML  string   `json:"html"`
}

// PaletteInfo lists one configured palette.
type PaletteInfo struct {
	Name    string      `json:"name"`
	Entries []EntryInfo `json:"entries"`
}

// EntryInfo is one selectable palette option.
type EntryInfo struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Default bool   `json:"default"`
}
