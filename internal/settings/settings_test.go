package settings

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatches/internal/swatch"
)

func TestLoadYAML(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "settings.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if diff := cmp.Diff([]string{"Black", "White"}, s.Colors.Labels()); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"brand", "mono"}, s.PaletteNames()); diff != "" {
		t.Errorf("palette names mismatch (-want +got):\n%s", diff)
	}

	brand := s.Palettes["brand"]
	if !brand[1].Color.Equal(swatch.Stops("#ff5500", "#ffcc00")) {
		t.Errorf("brand[1].Color = %v", brand[1].Color)
	}
	if d, ok := brand.Default(); !ok || d.Label != "Primary" {
		t.Errorf("brand default = %+v, %v", d, ok)
	}

	mono := s.Palettes["mono"]
	if mono[0].ID() != "light" || mono[1].ID() != "dark" {
		t.Errorf("mono keys = %q, %q", mono[0].ID(), mono[1].ID())
	}
}

func TestLoadField(t *testing.T) {
	f, err := LoadField(filepath.Join("testdata", "field.json"))
	if err != nil {
		t.Fatalf("LoadField() error = %v", err)
	}
	if !f.UseSharedConfig || f.PaletteName != "brand" || !f.Default.Matches("1") {
		t.Errorf("LoadField() = %+v", f)
	}
}

func TestLoadCompressedJSON(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, _ = w.Write([]byte(`{"colors":[{"label":"Red","color":"#f00"}]}`))
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	path := filepath.Join(t.TempDir(), "settings.json.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Red"}, s.Colors.Labels()); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(bad, []byte(`{"colors": 5}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(bad); err == nil {
		t.Error("Load() expected error for invalid palette")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestParseSniffsFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "json", data: `{"colors":[{"label":"A","color":"#111"}]}`},
		{name: "yaml", data: "colors:\n  - label: A\n    color: '#111'\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s swatch.Settings
			if err := Parse([]byte(tt.data), "settings", &s); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(s.Colors) != 1 || s.Colors[0].Label != "A" {
				t.Errorf("Parse() = %+v", s)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	s := &swatch.Settings{
		Colors: swatch.Palette{
			{Label: "Ok", Color: swatch.Solid("#fff, red"), Position: 1},
			{Label: "Bad", Color: swatch.Solid("#zzz"), Position: 2},
		},
		Palettes: map[string]swatch.Palette{
			"p": {
				{Label: "", Color: swatch.Solid("#000"), Position: 1},
				{Label: "Dup", Color: swatch.Stops("#111"), Position: 2},
				{Label: "Dup", Position: 3},
				{Scalar: true, Raw: "#abc", Position: 4},
			},
		},
	}

	var got []string
	for _, p := range Validate(s) {
		got = append(got, p.Palette+"/"+p.Entry)
	}
	want := []string{"colors/2", "p/1", "p/3", "p/3", "p/4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}

	if Validate(nil) != nil {
		t.Error("Validate(nil) should return nil")
	}
}

func TestStoreBuilder(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		store, err := NewBuilder().WithFile(filepath.Join("testdata", "settings.yaml")).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if len(store.Snapshot().Palettes) != 2 {
			t.Errorf("Snapshot() palettes = %d, want 2", len(store.Snapshot().Palettes))
		}
	})

	t.Run("env config", func(t *testing.T) {
		t.Setenv(EnvSettingsPath, filepath.Join("testdata", "settings.yaml"))
		store, err := NewBuilder().WithEnvConfig().Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if store.Path() == "" || len(store.Snapshot().Colors) != 2 {
			t.Errorf("env settings not loaded: path=%q", store.Path())
		}
	})

	t.Run("initial snapshot", func(t *testing.T) {
		initial := &swatch.Settings{Colors: swatch.Palette{{Label: "X", Color: swatch.Solid("#000"), Position: 1}}}
		store, err := NewBuilder().WithSettings(initial).Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if store.Snapshot() != initial {
			t.Error("Snapshot() should return the initial settings")
		}
		if err := store.Reload(); err == nil {
			t.Error("Reload() without a file should fail")
		}
	})

	t.Run("empty", func(t *testing.T) {
		store, err := NewBuilder().Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if store.Snapshot() == nil {
			t.Error("Snapshot() returned nil")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewBuilder().WithFile("testdata/nope.yaml").Build(); err == nil {
			t.Error("Build() expected error")
		}
	})
}

func TestStoreReloadKeepsSnapshotOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"colors":[{"label":"A","color":"#111"}]}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Debug})
	store, err := NewBuilder().WithFile(path).WithLogger(logger).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	before := store.Snapshot()

	if err := os.WriteFile(path, []byte(`{"colors":`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := store.Reload(); err == nil {
		t.Fatal("Reload() expected error")
	}
	if store.Snapshot() != before {
		t.Error("failed Reload() replaced the snapshot")
	}

	if err := os.WriteFile(path, []byte(`{"colors":[{"label":"B","color":"nope"}]}`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if store.Snapshot().Colors[0].Label != "B" {
		t.Error("Reload() did not publish the new snapshot")
	}
	if !strings.Contains(logs.String(), "palette problem") {
		t.Errorf("expected validation warning in logs, got %q", logs.String())
	}
}

func TestPalettesReservedName(t *testing.T) {
	s := &swatch.Settings{
		Colors: swatch.Palette{{Label: "Global", Color: swatch.Solid("#000"), Position: 1}},
		Palettes: map[string]swatch.Palette{
			"colors": {{Label: "Shared", Color: swatch.Solid("#fff"), Position: 1}},
			"brand":  {{Label: "Brand", Color: swatch.Solid("#00f"), Position: 1}},
		},
	}

	var names []string
	for _, p := range Palettes(s) {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"colors", "brand", "palettes/colors"}, names); diff != "" {
		t.Errorf("Palettes() names mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name      string
		wantLabel string
		wantOK    bool
	}{
		{"colors", "Global", true},
		{"palettes/colors", "Shared", true},
		{"brand", "Brand", true},
		{"palettes/brand", "Brand", true},
		{"missing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Lookup(s, tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && p[0].Label != tt.wantLabel {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, p[0].Label, tt.wantLabel)
			}
		})
	}

	problems := Validate(s)
	if len(problems) != 1 || problems[0].Palette != GlobalPalette || !strings.Contains(problems[0].Message, "reserved") {
		t.Errorf("Validate() = %v, want one reserved-name problem", problems)
	}
}

func TestValidateBlankStop(t *testing.T) {
	s := &swatch.Settings{Colors: swatch.Palette{
		{Label: "Fade", Color: swatch.Stops("#fff", " "), Position: 1},
	}}
	problems := Validate(s)
	if len(problems) != 1 || !strings.Contains(problems[0].Message, "blank color stop 2") {
		t.Errorf("Validate() = %v, want blank stop problem", problems)
	}
}
