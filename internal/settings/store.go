package settings

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatches/internal/swatch"
)

// EnvSettingsPath names the environment variable holding the settings file path.
const EnvSettingsPath = "SWATCHES_SETTINGS"

// Store holds the current settings snapshot. Readers call Snapshot on every
// request; the admin save path calls Publish or Reload. Snapshots must not be
// modified after publishing.
type Store struct {
	current atomic.Pointer[swatch.Settings]
	path    string
	logger  hclog.Logger
}

// Snapshot returns the current settings. It never returns nil.
func (s *Store) Snapshot() *swatch.Settings {
	if cur := s.current.Load(); cur != nil {
		return cur
	}
	return &swatch.Settings{}
}

// Publish replaces the current snapshot.
func (s *Store) Publish(settings *swatch.Settings) {
	if settings == nil {
		settings = &swatch.Settings{}
	}
	s.current.Store(settings)
	s.logger.Debug("published settings",
		"palettes", len(settings.Palettes), "colors", len(settings.Colors))
}

// Path returns the file the store loads from, if any.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the settings file and publishes it. On failure the previous
// snapshot stays in place.
func (s *Store) Reload() error {
	if s.path == "" {
		return fmt.Errorf("no settings file configured")
	}

	loaded, err := Load(s.path)
	if err != nil {
		return err
	}
	for _, p := range Validate(loaded) {
		s.logger.Warn("palette problem", "palette", p.Palette, "entry", p.Entry, "problem", p.Message)
	}
	s.Publish(loaded)
	return nil
}

// Builder provides a fluent interface for constructing a Store.
type Builder struct {
	path    string
	useEnv  bool
	initial *swatch.Settings
	logger  hclog.Logger
}

// NewBuilder creates a new Store builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithEnvConfig reads the settings path from SWATCHES_SETTINGS when no
// explicit file is set.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithFile sets the settings file to load.
func (b *Builder) WithFile(path string) *Builder {
	b.path = path
	return b
}

// WithSettings sets an initial snapshot, used when no file is configured.
func (b *Builder) WithSettings(s *swatch.Settings) *Builder {
	b.initial = s
	return b
}

// WithLogger sets the logger.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build constructs the Store and loads the configured file, if any.
// An explicit file takes precedence over the environment.
func (b *Builder) Build() (*Store, error) {
	s := &Store{path: b.path, logger: b.logger}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	if s.path == "" && b.useEnv {
		s.path = os.Getenv(EnvSettingsPath)
	}

	if s.path == "" {
		s.Publish(b.initial)
		return s, nil
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}
