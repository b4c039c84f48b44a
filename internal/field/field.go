// Package field implements the colour swatches field type on top of the
// resolver and a settings store.
package field

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatches/internal/settings"
	"github.com/jmylchreest/swatches/internal/swatch"
	"github.com/jmylchreest/swatches/internal/version"
	"github.com/jmylchreest/swatches/pkg/plugin"
)

// Name is the field type name reported to hosts.
const Name = "colour-swatches"

// Field is the colour swatches field type. It reads the current settings
// snapshot on every call and is safe for concurrent use.
type Field struct {
	store    *settings.Store
	resolver *swatch.Resolver
	logger   hclog.Logger
}

var _ plugin.FieldType = (*Field)(nil)

// New creates a Field backed by store.
func New(store *settings.Store, logger hclog.Logger) *Field {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Field{
		store:    store,
		resolver: swatch.NewResolver(swatch.WithLogger(logger.Named("resolver"))),
		logger:   logger,
	}
}

// GetMetadata returns plugin metadata.
func (f *Field) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            Name,
		Version:         version.Short(),
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Let editors choose from a predefined set of colours",
	}
}

// Normalize returns the canonical value and the required sub-fields it lacks.
func (f *Field) Normalize(_ context.Context, req plugin.NormalizeRequest) (plugin.NormalizeResponse, error) {
	v := swatch.Normalize(rawInput(req.Value))

	resp := plugin.NormalizeResponse{
		Value:   canonical(v),
		Fields:  v.Fields(),
		Missing: v.MissingFields(req.Required...),
	}
	if v.DecodeErr != nil {
		resp.DecodeError = v.DecodeErr.Error()
	}
	return resp, nil
}

// Serialize resolves a submission against the live palette.
func (f *Field) Serialize(_ context.Context, req plugin.SerializeRequest) (plugin.SerializeResponse, error) {
	var cfg swatch.FieldConfig
	if len(bytes.TrimSpace(req.Field)) > 0 {
		if err := json.Unmarshal(req.Field, &cfg); err != nil {
			return plugin.SerializeResponse{}, fmt.Errorf("invalid field config: %w", err)
		}
	}

	stored := f.resolver.Resolve(swatch.Normalize(rawInput(req.Value)), cfg, f.store.Snapshot())
	data, err := swatch.Encode(stored)
	if err != nil {
		return plugin.SerializeResponse{}, fmt.Errorf("failed to encode stored value: %w", err)
	}
	return plugin.SerializeResponse{Stored: data}, nil
}

// Preview derives the list-view swatch. Undecodable values preview as empty.
func (f *Field) Preview(_ context.Context, stored json.RawMessage) (plugin.PreviewResponse, error) {
	v := swatch.Normalize(rawInput(stored))
	if v.DecodeErr != nil {
		f.logger.Debug("previewing undecodable value as empty", "error", v.DecodeErr)
	}
	return PreviewResponse(swatch.RenderPreview(v.Value())), nil
}

// Palettes lists the global colours followed by the shared palettes by name.
// Names are unique; see settings.Palettes.
func (f *Field) Palettes(_ context.Context) ([]plugin.PaletteInfo, error) {
	listed := settings.Palettes(f.store.Snapshot())
	out := make([]plugin.PaletteInfo, 0, len(listed))
	for _, p := range listed {
		out = append(out, PaletteInfo(p.Name, p.Palette))
	}
	return out, nil
}

// PreviewResponse converts a descriptor to its wire form.
func PreviewResponse(d swatch.RenderDescriptor) plugin.PreviewResponse {
	return plugin.PreviewResponse{
		Kind:  string(d.Kind),
		Color: d.Color,
		Stops: d.Stops,
		Style: d.Style(),
		HTML:  d.HTML(),
	}
}

// PaletteInfo converts a palette to its wire form, skipping scalar entries.
func PaletteInfo(name string, p swatch.Palette) plugin.PaletteInfo {
	info := plugin.PaletteInfo{Name: name, Entries: []plugin.EntryInfo{}}
	for _, e := range p {
		if e.Scalar {
			continue
		}
		info.Entries = append(info.Entries, plugin.EntryInfo{
			ID:      e.ID(),
			Label:   e.Label,
			Color:   e.Color.String(),
			Default: e.IsDefault,
		})
	}
	return info
}

// rawInput unwraps a JSON string holding an encoded value, as hosts that
// store the field in a text column send it.
func rawInput(raw json.RawMessage) any {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return []byte(raw)
}

func canonical(v *swatch.NormalizedValue) json.RawMessage {
	if v.IsEmpty() {
		return json.RawMessage("null")
	}
	out, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return out
}
