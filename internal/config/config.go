// Package config holds the settings shared by the pathtrace CLI and server.
//
// Precedence, lowest first: Default, the YAML file given to Load, PATHTRACE_*
// environment variables (ApplyEnv), then command-line flags set by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/internal/logging"
	"github.com/katalvlaran/pathtrace/shortest"
)

// Sentinel errors returned by Load, ApplyEnv and Validate.
var (
	ErrRead         = errors.New("config: cannot read file")
	ErrDecode       = errors.New("config: cannot decode file")
	ErrInvalidEnv   = errors.New("config: invalid environment value")
	ErrInvalidLevel = errors.New("config: unknown log level")
	ErrInvalidValue = errors.New("config: invalid value")
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "PATHTRACE_"

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Run     RunConfig     `yaml:"run"`
	HTTP    HTTPConfig    `yaml:"http"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// RunConfig selects what to run and on which graph.
type RunConfig struct {
	// GraphFile, when set, is loaded with graph.Load instead of a preset.
	GraphFile string `yaml:"graph"`
	// Preset is the preset index used when GraphFile is empty.
	Preset    int                `yaml:"preset"`
	Algorithm shortest.Algorithm `yaml:"algorithm"`
	// Source empty means the first node of the graph.
	Source string `yaml:"source"`
	// Speed is the interval between steps in play mode.
	Speed time.Duration `yaml:"speed"`
}

// HTTPConfig governs the HTTP server.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// MaxRuns bounds the in-memory run store; the oldest run is evicted first.
	MaxRuns int `yaml:"max_runs"`
}

const (
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = logging.FormatText
	defaultSpeed           = time.Second
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxRuns         = 256
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Run: RunConfig{
			Algorithm: shortest.Default,
			Speed:     defaultSpeed,
		},
		HTTP: HTTPConfig{
			Addr:            defaultAddr,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MaxRuns:         defaultMaxRuns,
		},
	}
}

// Load returns Default overlaid with the YAML document at path. Keys absent
// from the file keep their defaults; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays PATHTRACE_* variables onto c using lookup (os.LookupEnv
// when nil). Malformed numbers and durations are reported, not ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	env := envReader{lookup: lookup}

	env.str("LOG_LEVEL", &c.Logging.Level)
	env.str("LOG_FORMAT", &c.Logging.Format)
	env.str("GRAPH", &c.Run.GraphFile)
	env.integer("PRESET", &c.Run.Preset)
	if v, ok := env.get("ALGORITHM"); ok {
		c.Run.Algorithm = shortest.Parse(v)
	}
	env.str("SOURCE", &c.Run.Source)
	env.duration("SPEED", &c.Run.Speed)
	env.str("HTTP_ADDR", &c.HTTP.Addr)
	env.duration("HTTP_READ_TIMEOUT", &c.HTTP.ReadTimeout)
	env.duration("HTTP_WRITE_TIMEOUT", &c.HTTP.WriteTimeout)
	env.duration("HTTP_IDLE_TIMEOUT", &c.HTTP.IdleTimeout)
	env.duration("HTTP_SHUTDOWN_TIMEOUT", &c.HTTP.ShutdownTimeout)
	env.integer("MAX_RUNS", &c.HTTP.MaxRuns)

	return errors.Join(env.errs...)
}

// Validate checks values no component can fall back from. An out-of-range
// preset and an unknown algorithm are not errors: they fall back to preset 0
// and Dijkstra.
func (c Config) Validate() error {
	var errs []error
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Logging.Level))
	}
	switch c.Logging.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalidValue, c.Logging.Format))
	}
	if c.Run.Speed <= 0 {
		errs = append(errs, fmt.Errorf("%w: run.speed %s", ErrInvalidValue, c.Run.Speed))
	}
	if c.HTTP.MaxRuns < 1 {
		errs = append(errs, fmt.Errorf("%w: http.max_runs %d", ErrInvalidValue, c.HTTP.MaxRuns))
	}
	if c.HTTP.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: http.shutdown_timeout %s", ErrInvalidValue, c.HTTP.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *envReader) get(key string) (string, bool) {
	v, ok := e.lookup(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (e *envReader) str(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) integer(key string, dst *int) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, key, v))
		return
	}
	*dst = n
}

func (e *envReader) duration(key string, dst *time.Duration) {
	v, ok := e.get(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, key, v))
		return
	}
	*dst = d
}
