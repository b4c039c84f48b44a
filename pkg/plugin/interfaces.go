package plugin

import (
	"context"
	"encoding/json"
)

// FieldType is the interface a colour swatches field implements for go-plugin RPC.
type FieldType interface {
	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo

	// Normalize turns a raw value into its canonical form and reports
	// required sub-fields that are missing.
	Normalize(ctx context.Context, req NormalizeRequest) (NormalizeResponse, error)

	// Serialize resolves a submitted value against the live palette and
	// returns what to persist.
	Serialize(ctx context.Context, req SerializeRequest) (SerializeResponse, error)

	// Preview derives the list-view swatch for a stored value.
	Preview(ctx context.Context, stored json.RawMessage) (PreviewResponse, error)

	// Palettes lists the shared palettes and the global colour list.
	Palettes(ctx context.Context) ([]PaletteInfo, error)
}
