// Package swatch resolves colour swatch field values against their palettes
// and derives list-view previews from the stored result.
package swatch

import (
	"github.com/hashicorp/go-hclog"
)

// Resolver re-derives stored values from the live palette. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	logger hclog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver. Without options it logs nothing.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve resolves value with a silent default Resolver.
func Resolve(value *NormalizedValue, field FieldConfig, settings *Settings) *StoredValue {
	return defaultResolver.Resolve(value, field, settings)
}

// Resolve returns the value to persist for a submitted selection.
//
// An entry whose label equals the submitted label supplies the colour; the
// submitted colour is never kept. With duplicate labels the last entry wins.
// Without a label match the field default, matched by key or 1-based
// position, is used. An empty submission, or one that matches nothing,
// resolves to nil.
func (r *Resolver) Resolve(value *NormalizedValue, field FieldConfig, settings *Settings) *StoredValue {
	if value.IsEmpty() {
		return nil
	}

	palette, source := selectPalette(field, settings)
	if source == SourceFallback && field.UseSharedConfig {
		r.logger.Debug("shared palette not found, using global colours",
			"palette", field.PaletteName, "entries", len(palette))
	}

	var result *StoredValue
	if value.HasLabel() {
		for _, entry := range palette {
			if entry.Scalar || entry.Label != value.Label {
				continue
			}
			result = &StoredValue{Label: value.Label, Color: entry.Color}
		}
	}
	if result != nil {
		r.logger.Trace("resolved by label", "label", result.Label, "source", source)
		return result
	}

	if !field.Default.IsSet() {
		r.logger.Trace("no palette entry for label", "label", value.Label, "source", source)
		return nil
	}
	for _, entry := range palette {
		if entry.Scalar || !field.Default.Matches(entry.ID()) {
			continue
		}
		r.logger.Trace("resolved by default", "default", field.Default.String(), "label", entry.Label)
		return &StoredValue{Label: entry.Label, Color: entry.Color}
	}

	r.logger.Trace("no palette entry for label or default",
		"label", value.Label, "default", field.Default.String(), "source", source)
	return nil
}
