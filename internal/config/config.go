package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"symbol-inventory/internal/common"
	"symbol-inventory/internal/source"
)

// Source kinds.
const (
	KindManifest  = "manifest"
	KindClasspath = "classpath"
	KindPackages  = "packages"
)

// Output formats.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
	OutputText = "text"
)

// ErrUnknownSourceKind is returned for a source entry with an unsupported kind.
var ErrUnknownSourceKind = errors.New("unknown source kind")

// Config is the root run configuration.
type Config struct {
	Version           string         `yaml:"version"`
	Sources           []SourceConfig `yaml:"sources"`
	Workers           int            `yaml:"workers"`
	SkipEmptySegments bool           `yaml:"skip_empty_segments"`
	Output            string         `yaml:"output"`
	LogLevel          string         `yaml:"log_level"`
}

// SourceConfig describes one name source.
type SourceConfig struct {
	Kind          string   `yaml:"kind"`
	Paths         []string `yaml:"paths"`
	Dir           string   `yaml:"dir,omitempty"`
	Tests         bool     `yaml:"tests,omitempty"`
	ExportedOnly  bool     `yaml:"exported_only,omitempty"`
	IgnoreMissing bool     `yaml:"ignore_missing,omitempty"`
}

// Default returns a configuration with every default applied and no sources.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	if cfg.Output == "" {
		cfg.Output = OutputYAML
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	for i := range cfg.Sources {
		cfg.Sources[i].Kind = strings.ToLower(cfg.Sources[i].Kind)
	}
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case OutputYAML, OutputJSON, OutputText:
	default:
		errs = append(errs, fmt.Errorf("unsupported output %q", c.Output))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	for i, s := range c.Sources {
		switch s.Kind {
		case KindManifest, KindClasspath, KindPackages:
		default:
			errs = append(errs, fmt.Errorf("sources[%d]: %w: %q", i, ErrUnknownSourceKind, s.Kind))
			continue
		}

		if common.IsEmpty(s.Paths) {
			errs = append(errs, fmt.Errorf("sources[%d]: %s source needs at least one path", i, s.Kind))
		}
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// BuildSource turns the configured sources into a single Source, in order.
func (c *Config) BuildSource() (source.Source, error) {
	sources := make([]source.Source, 0, len(c.Sources))

	for i, s := range c.Sources {
		src, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("sources[%d]: %w", i, err)
		}

		sources = append(sources, src)
	}

	return source.Concat(sources...), nil
}

// Build creates the Source described by s.
func (s SourceConfig) Build() (source.Source, error) {
	switch s.Kind {
	case KindManifest:
		manifests := make([]source.Source, 0, len(s.Paths))
		for _, p := range s.Paths {
			m := source.Manifest{Path: p}
			if p == "-" {
				m.Reader = os.Stdin
			}
			manifests = append(manifests, m)
		}

		return source.Concat(manifests...), nil

	case KindClasspath:
		return source.Classpath{Entries: s.Paths, IgnoreMissing: s.IgnoreMissing}, nil

	case KindPackages:
		return source.Packages{
			Patterns:     s.Paths,
			Dir:          s.Dir,
			Tests:        s.Tests,
			ExportedOnly: s.ExportedOnly,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSourceKind, s.Kind)
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
