// Package config builds a configured coordsys.Registry from a JSON file and
// CAMCONV_* environment variables.
//
// The supported entry point is:
//
//	cfg, err := config.Load("camconv.json") // "" skips the file
//	if err != nil {
//		return err
//	}
//	reg, err := cfg.NewRegistry()
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/banshee-data/camconv/coordsys"
)

// Log stream targets accepted by the log_* fields. "off" and "" both
// disable a stream.
const (
	LogOff    = ""
	LogOffStr = "off"
	LogStderr = "stderr"
	LogStdout = "stdout"
)

// Config holds the settings used to build a coordsys.Registry and its log
// streams. Every field is optional; the Get* methods supply defaults.
// Fields can be set from a JSON file and overridden by CAMCONV_* environment
// variables.
type Config struct {
	BasisTolerance *float64 `json:"basis_tolerance,omitempty"`

	LogOps   *string `json:"log_ops,omitempty"`
	LogDiag  *string `json:"log_diag,omitempty"`
	LogTrace *string `json:"log_trace,omitempty"`
}

// envOverrides mirrors Config for environment variables. Zero values mean
// the variable is unset.
type envOverrides struct {
	BasisTolerance float64 `env:"CAMCONV_BASIS_TOLERANCE"`
	LogOps         string  `env:"CAMCONV_LOG_OPS"`
	LogDiag        string  `env:"CAMCONV_LOG_DIAG"`
	LogTrace       string  `env:"CAMCONV_LOG_TRACE"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// EmptyConfig returns a Config with all fields set to nil.
func EmptyConfig() *Config {
	return &Config{}
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	return &Config{
		BasisTolerance: ptrFloat64(coordsys.DefaultTolerance),
		LogOps:         ptrString(LogStderr),
		LogDiag:        ptrString(LogOff),
		LogTrace:       ptrString(LogOff),
	}
}

// LoadConfig loads a Config from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file keep their defaults, so partial configs are safe.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from CAMCONV_* environment variables. Unset
// variables leave the existing value alone.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.BasisTolerance != 0 {
		c.BasisTolerance = ptrFloat64(o.BasisTolerance)
	}
	if o.LogOps != "" {
		c.LogOps = ptrString(o.LogOps)
	}
	if o.LogDiag != "" {
		c.LogDiag = ptrString(o.LogDiag)
	}
	if o.LogTrace != "" {
		c.LogTrace = ptrString(o.LogTrace)
	}
	return c.Validate()
}

// Load reads path (if non-empty) and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := EmptyConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if c.BasisTolerance != nil {
		if *c.BasisTolerance <= 0 || *c.BasisTolerance >= 1 {
			return fmt.Errorf("basis_tolerance must be between 0 and 1 (exclusive), got %g", *c.BasisTolerance)
		}
	}

	logFields := []struct {
		name  string
		value *string
	}{
		{"log_ops", c.LogOps},
		{"log_diag", c.LogDiag},
		{"log_trace", c.LogTrace},
	}
	for _, f := range logFields {
		if f.value == nil {
			continue
		}
		switch *f.value {
		case LogOff, LogOffStr, LogStderr, LogStdout:
		default:
			return fmt.Errorf("%s must be %q, %q, %q or empty, got %q", f.name, LogStderr, LogStdout, LogOffStr, *f.value)
		}
	}

	return nil
}

// GetBasisTolerance returns the basis_tolerance value or the default.
func (c *Config) GetBasisTolerance() float64 {
	if c.BasisTolerance == nil {
		return coordsys.DefaultTolerance
	}
	return *c.BasisTolerance
}

// GetLogOps returns the log_ops target or the default (stderr).
func (c *Config) GetLogOps() string {
	if c.LogOps == nil {
		return LogStderr
	}
	return *c.LogOps
}

// GetLogDiag returns the log_diag target or the default (off).
func (c *Config) GetLogDiag() string {
	if c.LogDiag == nil {
		return LogOff
	}
	return *c.LogDiag
}

// GetLogTrace returns the log_trace target or the default (off).
func (c *Config) GetLogTrace() string {
	if c.LogTrace == nil {
		return LogOff
	}
	return *c.LogTrace
}

// RegistryOptions converts the config into coordsys.Options.
func (c *Config) RegistryOptions() coordsys.Options {
	return coordsys.Options{Tolerance: c.GetBasisTolerance()}
}

// LogWriters resolves the log_* targets into coordsys.LogWriters.
func (c *Config) LogWriters() coordsys.LogWriters {
	return coordsys.LogWriters{
		Ops:   writerFor(c.GetLogOps()),
		Diag:  writerFor(c.GetLogDiag()),
		Trace: writerFor(c.GetLogTrace()),
	}
}

// NewRegistry configures the coordsys log streams and builds a registry
// from the config. Log writers are resolved when NewRegistry is called.
func (c *Config) NewRegistry() (*coordsys.Registry, error) {
	coordsys.SetLogWriters(c.LogWriters())
	return coordsys.NewRegistry(c.RegistryOptions())
}

func writerFor(target string) io.Writer {
	switch target {
	case LogStderr:
		return os.Stderr
	case LogStdout:
		return os.Stdout
	default:
		return nil
	}
}
