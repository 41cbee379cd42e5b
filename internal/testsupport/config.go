package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.MapFile = filepath.Join(base, "extension_map.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDefaultCategory sets the unmapped-extension fallback on the test config.
func WithDefaultCategory(category string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.DefaultCategory = category
	}
}

// WithRenameAttempts overrides the collision-probe bound on the test config.
func WithRenameAttempts(attempts int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.RenameAttempts = attempts
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
