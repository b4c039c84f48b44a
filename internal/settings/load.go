// Package settings loads swatch palette configuration and publishes it as
// immutable snapshots.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatches/internal/compression"
	"github.com/jmylchreest/swatches/internal/swatch"
)

// Load reads plugin settings from a JSON or YAML file. The file may be
// compressed (.gz, .xz, .bz2) or a tar/zip bundle containing a settings file.
func Load(path string) (*swatch.Settings, error) {
	var s swatch.Settings
	if err := decodeFile(path, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadField reads a field-instance configuration from a JSON or YAML file.
func LoadField(path string) (swatch.FieldConfig, error) {
	var f swatch.FieldConfig
	if err := decodeFile(path, &f); err != nil {
		return swatch.FieldConfig{}, err
	}
	return f, nil
}

// Parse decodes settings content. The format is chosen from name's extension;
// without a known extension JSON is tried first, then YAML.
func Parse(data []byte, name string, v any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return decodeJSON(data, v)
	case ".yaml", ".yml":
		return decodeYAML(data, v)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := decodeJSON(data, v); err == nil {
			return nil
		}
	}
	return decodeYAML(data, v)
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 - settings path is provided by the operator
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	res, err := compression.Open(data, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if err := Parse(res.Data, res.Name, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return nil
}
