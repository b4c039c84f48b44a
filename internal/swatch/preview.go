package swatch

import (
	"html"
	"slices"
	"strings"
)

// Kind is the kind of preview to draw.
type Kind string

const (
	KindEmpty    Kind = "empty"
	KindSolid    Kind = "solid"
	KindGradient Kind = "gradient"
)

// RenderDescriptor describes how to draw a list-view preview swatch.
type RenderDescriptor struct {
	Kind  Kind     `json:"kind"`
	Color string   `json:"color,omitempty"`
	Stops []string `json:"stops,omitempty"`
}

// RenderPreview derives the preview for a stored value. A nil value or one
// without a colour is empty. A scalar colour is solid and kept verbatim; a
// list becomes stops in order, every entry included, and is solid when it
// holds a single stop.
func RenderPreview(v *StoredValue) RenderDescriptor {
	if v == nil || v.Color.IsZero() {
		return RenderDescriptor{Kind: KindEmpty}
	}
	if !v.Color.list {
		return RenderDescriptor{Kind: KindSolid, Color: v.Color.scalar}
	}

	stops := slices.Clone(v.Color.stops)
	if len(stops) == 1 {
		return RenderDescriptor{Kind: KindSolid, Color: stops[0]}
	}
	return RenderDescriptor{Kind: KindGradient, Stops: stops}
}

// Style returns the inline CSS for the preview element.
func (d RenderDescriptor) Style() string {
	switch d.Kind {
	case KindSolid:
		return "background-color:" + cssValue(d.Color)
	case KindGradient:
		stops := make([]string, len(d.Stops))
		for i, s := range d.Stops {
			stops[i] = cssValue(s)
		}
		return "background: linear-gradient(to bottom right, " + strings.Join(stops, ",") + ");"
	default:
		return "background-color: transparent"
	}
}

// HTML returns the small static preview element used in element indexes.
func (d RenderDescriptor) HTML() string {
	return `<div class="color small static"><div class="color-preview" style="` +
		html.EscapeString(d.Style()) + `"></div></div>`
}

// cssValue strips characters that would end a declaration or the attribute.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\'', '\\':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
