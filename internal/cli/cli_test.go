package cli_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/swatches/internal/cli"
	"github.com/jmylchreest/swatches/internal/settings"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(settings.EnvSettingsPath, "")

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var testSettings = filepath.Join("testdata", "settings.yaml")

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "label match",
			args: []string{"--field", filepath.Join("testdata", "field.json"), "--value", `{"label":"Sunset","color":"#000"}`},
			want: `{"label":"Sunset","color":["#ff5500","#ffcc00"]}`,
		},
		{
			name: "default fallback",
			args: []string{"--field", filepath.Join("testdata", "field.json"), "--value", `{"label":"Gone"}`},
			want: `{"label":"Primary","color":"#0055ff"}`,
		},
		{
			name: "keyed default",
			args: []string{"--palette", "mono", "--default", "dark", "--value", `{"label":"Gone"}`},
			want: `{"label":"Dark","color":"#111111"}`,
		},
		{
			name: "empty value",
			args: []string{"--palette", "brand", "--default", "1"},
			want: `null`,
		},
		{
			name: "unknown palette uses global colours",
			args: []string{"--palette", "nope", "--value", `{"label":"White"}`},
			want: `{"label":"White","color":"#ffffff"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"resolve", "--settings", testSettings}, tt.args...)
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("resolve error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("resolve = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolveCommandMissingSettings(t *testing.T) {
	_, err := run(t, "resolve", "--settings", filepath.Join("testdata", "missing.yaml"), "-p", "brand")
	if err == nil {
		t.Fatal("expected error for missing settings file")
	}
}

func TestPreviewCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "css of stored gradient",
			args: []string{"--format", "css", "--value", `{"label":"S","color":["#f00","#00f"]}`},
			want: "background: linear-gradient(to bottom right, #f00,#00f);",
		},
		{
			name: "css of empty value",
			args: []string{"--format", "css"},
			want: "background-color: transparent",
		},
		{
			name: "html after resolving",
			args: []string{"--format", "html", "-p", "brand", "--value", `{"label":"Primary"}`},
			want: `<div class="color small static"><div class="color-preview" style="background-color:#0055ff"></div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"preview", "--settings", testSettings}, tt.args...)
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("preview error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("preview = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreviewCommandDefaultsToJSON(t *testing.T) {
	out, err := run(t, "preview", "--value", `{"label":"Red","color":"#f00"}`)
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}
	if !strings.Contains(out, `"kind": "solid"`) || !strings.Contains(out, `"color": "#f00"`) {
		t.Errorf("preview output = %s", out)
	}
}

func TestPreviewCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	_, err := run(t, "preview", "--format", "png", "--size", "8", "-o", path,
		"--value", `{"label":"S","color":["#f00","#00f"]}`)
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("png bounds = %v, want 8x8", b)
	}
}

func TestPreviewCommandUnknownFormat(t *testing.T) {
	_, err := run(t, "preview", "--format", "svg")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("preview error = %v, want unknown format", err)
	}
}

func TestPalettesCommand(t *testing.T) {
	out, err := run(t, "palettes", "--settings", testSettings)
	if err != nil {
		t.Fatalf("palettes error = %v", err)
	}
	for _, want := range []string{"colors", "brand", "mono", "Primary"} {
		if !strings.Contains(out, want) {
			t.Errorf("palettes output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("palettes output contains escapes when not a terminal:\n%s", out)
	}
}

func TestPalettesCommandEntries(t *testing.T) {
	out, err := run(t, "palettes", "--settings", testSettings, "mono")
	if err != nil {
		t.Fatalf("palettes error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "light") || !strings.HasPrefix(lines[3], "dark") {
		t.Errorf("entries out of order:\n%s", out)
	}
}

func TestPalettesCommandSwatches(t *testing.T) {
	out, err := run(t, "palettes", "--settings", testSettings, "--swatches", "brand")
	if err != nil {
		t.Fatalf("palettes error = %v", err)
	}
	if !strings.Contains(out, "\x1b[48;2;") {
		t.Errorf("expected truecolour swatches:\n%s", out)
	}
}

func TestPalettesCommandUnknown(t *testing.T) {
	_, err := run(t, "palettes", "--settings", testSettings, "nope")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("palettes error = %v, want not found", err)
	}
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--settings", testSettings,
		"--field", filepath.Join("testdata", "field.json"))
	if err != nil {
		t.Fatalf("validate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "settings OK") {
		t.Errorf("validate output = %q", out)
	}
}

func TestValidateCommandProblems(t *testing.T) {
	out, err := run(t, "validate", "--settings", filepath.Join("testdata", "bad.yaml"))
	if err == nil {
		t.Fatal("expected validate to fail")
	}
	if !strings.Contains(out, "duplicate") || !strings.Contains(out, "not-a-colour") {
		t.Errorf("validate output = %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "swatches version") {
		t.Errorf("version output = %q", out)
	}
}

func TestPluginInfoCommand(t *testing.T) {
	out, err := run(t, "plugin", "info")
	if err != nil {
		t.Fatalf("plugin info error = %v", err)
	}
	if !strings.Contains(out, `"name": "colour-swatches"`) {
		t.Errorf("plugin info output = %s", out)
	}
}

func TestPalettesCommandReservedName(t *testing.T) {
	reserved := filepath.Join("testdata", "reserved.yaml")

	out, err := run(t, "palettes", "--settings", reserved)
	if err != nil {
		t.Fatalf("palettes error = %v", err)
	}
	if !strings.Contains(out, "palettes/colors") {
		t.Errorf("shared palette not listed separately:\n%s", out)
	}

	tests := []struct {
		name string
		want string
	}{
		{"colors", "Global"},
		{"palettes/colors", "Shared"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "palettes", "--settings", reserved, tt.name)
			if err != nil {
				t.Fatalf("palettes error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("palettes %s output:\n%s", tt.name, out)
			}
		})
	}
}
