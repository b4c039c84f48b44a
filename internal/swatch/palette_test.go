package swatch

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestPaletteUnmarshalJSONList(t *testing.T) {
	data := `[
		{"label": "Red", "color": "#f00", "default": "1"},
		"#bare",
		{"label": "Duo", "color": [{"color": "#111"}, {"color": "#222"}], "default": ""}
	]`

	var p Palette
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := Palette{
		{Label: "Red", Color: Solid("#f00"), IsDefault: true, Position: 1},
		{Scalar: true, Raw: "#bare", Position: 2},
		{Label: "Duo", Color: Stops("#111", "#222"), Position: 3},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"Red", "Duo"}, p.Labels()); diff != "" {
		t.Errorf("Labels() mismatch (-want +got):\n%s", diff)
	}
	if d, ok := p.Default(); !ok || d.Label != "Red" {
		t.Errorf("Default() = %+v, %v", d, ok)
	}
}

func TestPaletteUnmarshalJSONObject(t *testing.T) {
	data := `{
		"zeta": {"label": "Z", "color": "#000"},
		"alpha": {"label": "A", "color": "#fff"},
		"3": {"label": "Three", "color": "#333"}
	}`

	var p Palette
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	gotIDs := make([]string, len(p))
	for i, e := range p {
		gotIDs[i] = e.ID()
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "4"}, gotIDs); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var again Palette
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("Unmarshal(Marshal()) error = %v", err)
	}
	if diff := cmp.Diff(p, again); diff != "" {
		t.Errorf("keyed palette round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteUnmarshalJSONErrors(t *testing.T) {
	for _, data := range []string{`"nope"`, `[{"label": 1}]`, `[{"label":"x","color":true}]`} {
		var p Palette
		if err := json.Unmarshal([]byte(data), &p); err == nil {
			t.Errorf("Unmarshal(%s) expected error", data)
		}
	}

	var p Palette
	if err := json.Unmarshal([]byte(`null`), &p); err != nil || p != nil {
		t.Errorf("Unmarshal(null) = %v, %v", p, err)
	}
}

func TestPaletteUnmarshalYAML(t *testing.T) {
	data := `
sequence:
  - label: Red
    color: "#f00"
    default: true
  - label: Sunset
    color:
      - "#f00"
      - color: "#ff0"
mapping:
  second: {label: B, color: "#222"}
  first: {label: A, color: "#111"}
`
	var doc struct {
		Sequence Palette `yaml:"sequence"`
		Mapping  Palette `yaml:"mapping"`
	}
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	wantSeq := Palette{
		{Label: "Red", Color: Solid("#f00"), IsDefault: true, Position: 1},
		{Label: "Sunset", Color: Stops("#f00", "#ff0"), Position: 2},
	}
	if diff := cmp.Diff(wantSeq, doc.Sequence); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}

	wantMap := Palette{
		{Label: "B", Color: Solid("#222"), Position: 1, Key: "second"},
		{Label: "A", Color: Solid("#111"), Position: 2, Key: "first"},
	}
	if diff := cmp.Diff(wantMap, doc.Mapping); diff != "" {
		t.Errorf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultIndex(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		id    string
		match bool
	}{
		{name: "number", json: `2`, id: "2", match: true},
		{name: "numeric string", json: `"2"`, id: "2", match: true},
		{name: "float equals int", json: `2.0`, id: "2", match: true},
		{name: "key", json: `"accent"`, id: "accent", match: true},
		{name: "key mismatch", json: `"accent"`, id: "primary", match: false},
		{name: "number vs key", json: `0`, id: "accent", match: false},
		{name: "null", json: `null`, id: "1", match: false},
		{name: "empty string", json: `""`, id: "1", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DefaultIndex
			if err := json.Unmarshal([]byte(tt.json), &d); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := d.Matches(tt.id); got != tt.match {
				t.Errorf("Matches(%q) = %v, want %v", tt.id, got, tt.match)
			}
		})
	}

	var d DefaultIndex
	if err := json.Unmarshal([]byte(`true`), &d); err == nil {
		t.Error("Unmarshal(true) expected error")
	}
}

func TestDefaultIndexMarshal(t *testing.T) {
	tests := []struct {
		d    DefaultIndex
		want string
	}{
		{DefaultIndex{}, `null`},
		{DefaultAt(3), `3`},
		{DefaultKey("accent"), `"accent"`},
		{DefaultKey("2.5"), `"2.5"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.d)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.d, got, tt.want)
		}
	}
}

func TestFieldConfigJSON(t *testing.T) {
	data := `{"useConfigFile": true, "palette": "brand", "options": [], "default": "2"}`
	var f FieldConfig
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !f.UseSharedConfig || f.PaletteName != "brand" || f.Default.String() != "2" {
		t.Errorf("Unmarshal() = %+v", f)
	}
}
