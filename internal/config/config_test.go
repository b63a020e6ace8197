package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symbol-inventory/internal/source"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("sources:\n  - kind: Manifest\n    paths: [names.txt]\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.SkipEmptySegments)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, KindManifest, cfg.Sources[0].Kind)
}

func TestParse_Full(t *testing.T) {
	data := []byte(`
version: "1"
sources:
  - kind: classpath
    paths: [build/classes, lib/a.jar]
    ignore_missing: true
  - kind: packages
    paths: ["./..."]
    dir: ../svc
    tests: true
    exported_only: true
workers: 4
skip_empty_segments: true
output: json
log_level: debug
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.SkipEmptySegments)
	assert.Equal(t, OutputJSON, cfg.Output)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, SourceConfig{
		Kind:          KindClasspath,
		Paths:         []string{"build/classes", "lib/a.jar"},
		IgnoreMissing: true,
	}, cfg.Sources[0])
	assert.Equal(t, "../svc", cfg.Sources[1].Dir)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "sources: [\n"},
		{"unknown kind", "sources:\n  - kind: registry\n    paths: [x]\n"},
		{"no paths", "sources:\n  - kind: manifest\n"},
		{"bad output", "output: xml\n"},
		{"bad level", "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("sources:\n  - kind: registry\n    paths: [x]\n"))
	assert.ErrorIs(t, err, ErrUnknownSourceKind)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildSource(t *testing.T) {
	cfg := Default()
	cfg.Sources = []SourceConfig{
		{Kind: KindClasspath, Paths: []string{"a.jar"}, IgnoreMissing: true},
		{Kind: KindPackages, Paths: []string{"./..."}, Dir: "svc", ExportedOnly: true},
	}

	src, err := cfg.BuildSource()
	require.NoError(t, err)
	assert.NotNil(t, src)

	built, err := cfg.Sources[0].Build()
	require.NoError(t, err)
	assert.Equal(t, source.Classpath{Entries: []string{"a.jar"}, IgnoreMissing: true}, built)

	built, err = cfg.Sources[1].Build()
	require.NoError(t, err)
	assert.Equal(t, source.Packages{Patterns: []string{"./..."}, Dir: "svc", ExportedOnly: true}, built)

	_, err = SourceConfig{Kind: "nope"}.Build()
	assert.ErrorIs(t, err, ErrUnknownSourceKind)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Sources = []SourceConfig{{Kind: KindManifest, Paths: []string{"names.txt"}}}

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
