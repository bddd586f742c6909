// Package config resolves runtime settings from defaults, an optional YAML file,
// the environment (including a .env file) and command line flags, in that order
// of increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"image-transcriber/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// ErrCodeNotFound means an explicitly named config file does not exist
	ErrCodeNotFound = "config_not_found"
	// ErrCodeInvalid means the config file could not be read or parsed, or a value is out of range
	ErrCodeInvalid = "config_invalid"
)

const (
	EnvConfigFile = "IMAGE_TRANSCRIBER_CONFIG"
	EnvLogFormat  = "IMAGE_TRANSCRIBER_LOG_FORMAT"
	EnvLogFile    = "IMAGE_TRANSCRIBER_LOG_FILE"
	EnvLogLevel   = "LOG_LEVEL"
	EnvDebug      = "DEBUG"
)

const (
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800
	MinWindowWidth      = 480
	MinWindowHeight     = 360
)

// Config is the effective configuration consumed by the application
type Config struct {
	LogLevel     string  `yaml:"log_level"`
	LogFormat    string  `yaml:"log_format"`
	LogFile      string  `yaml:"log_file"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`

	// Source is the config file that was read, empty when none was
	Source string `yaml:"-"`
}

// Flags carries values given on the command line. The *Set fields record
// whether a flag was passed so an explicit value can override the file.
type Flags struct {
	ConfigPath  string
	LogLevel    string
	LogLevelSet bool
}

// Error is a structured configuration error carrying an error code
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", e.Code, e.Path)
	}
	return fmt.Sprintf("%s: %q: %v", e.Code, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the error code from err, or "" if err is not a *Error
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    string(logger.FormatConsole),
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// LoadDotEnv loads variables from .env style files into the process
// environment without overriding variables that are already set. Missing files
// are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load resolves the effective configuration using the process environment
func Load(flags Flags) (Config, error) {
	return LoadWithEnv(flags, os.LookupEnv)
}

// LoadWithEnv resolves the effective configuration reading the environment
// through lookup
func LoadWithEnv(flags Flags, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	path := strings.TrimSpace(flags.ConfigPath)
	if path == "" {
		path, _ = lookup(EnvConfigFile)
		path = strings.TrimSpace(path)
	}
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			return Config{}, err
		}
		cfg.Source = path
	}

	applyEnv(&cfg, lookup)

	if flags.LogLevelSet {
		cfg.LogLevel = flags.LogLevel
	}

	if err := cfg.validate(); err != nil {
		return Config{}, &Error{Code: ErrCodeInvalid, Path: cfg.Source, Err: err}
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Error{Code: ErrCodeNotFound, Path: path, Err: err}
		}
		return &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return &Error{Code: ErrCodeInvalid, Path: path, Err: err}
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = v
	} else if v, ok := lookup(EnvDebug); ok {
		if debug, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil && debug {
			cfg.LogLevel = "debug"
		}
	}
	if v, ok := lookup(EnvLogFormat); ok && strings.TrimSpace(v) != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
}

func (c *Config) validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return err
	}

	if c.WindowWidth == 0 {
		c.WindowWidth = DefaultWindowWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = DefaultWindowHeight
	}
	if c.WindowWidth < MinWindowWidth || c.WindowHeight < MinWindowHeight {
		return fmt.Errorf("window size %.0fx%.0f is smaller than %dx%d",
			c.WindowWidth, c.WindowHeight, MinWindowWidth, MinWindowHeight)
	}
	return nil
}
