// Package config resolves prettylog settings from flags, environment
// variables and an optional YAML file.
//
// Precedence, highest first: explicit flags (or viper.Set), PRETTYLOG_*
// environment variables, the config file, defaults. Keys use dashes;
// the matching environment variable replaces them with underscores, so
// buffer-size is read from PRETTYLOG_BUFFER_SIZE.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // timezone names must resolve on hosts without zoneinfo

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/prettylog/logger"
	"github.com/philipp01105/prettylog/pipeline"
)

// EnvPrefix is the prefix of every environment variable read by New.
const EnvPrefix = "PRETTYLOG"

// Configuration keys
const (
	KeyColorMode  = "color-mode"
	KeyUTC        = "utc"
	KeyTimezone   = "timezone"
	KeyOnError    = "on-error"
	KeyAsync      = "async"
	KeyBufferSize = "buffer-size"
	KeyFollow     = "follow"
	KeyLogLevel   = "log-level"
	KeyOutput     = "output"
	KeyMaxSize    = "max-size"
	KeyMaxBackups = "max-backups"
	KeyTee        = "tee"

	keyNoColorEnv = "no-color-env"
)

// ColorMode selects when output is colored
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config is the resolved, validated configuration
type Config struct {
	ColorMode  ColorMode
	UTC        bool
	Timezone   string
	OnError    pipeline.Policy
	Async      bool
	BufferSize int
	Follow     bool
	LogLevel   zapcore.Level
	// Output is a file receiving the formatted stream instead of stdout
	Output     string
	MaxSize    int64
	MaxBackups int
	// Tee writes to stdout as well as Output
	Tee bool
	// NoColor is true when the NO_COLOR environment variable is set
	NoColor bool

	location *time.Location
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	_ = v.BindEnv(keyNoColorEnv, "NO_COLOR")
	return v
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyColorMode, string(ColorAuto))
	v.SetDefault(KeyUTC, false)
	v.SetDefault(KeyTimezone, "")
	v.SetDefault(KeyOnError, pipeline.Echo.String())
	v.SetDefault(KeyAsync, true)
	v.SetDefault(KeyBufferSize, 1024)
	v.SetDefault(KeyFollow, false)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyMaxSize, 0)
	v.SetDefault(KeyMaxBackups, 0)
	v.SetDefault(KeyTee, false)
}

// ReadFile loads the YAML config file at path. With an empty path it
// looks for .prettylog.yaml in the working directory and then in the
// home directory; a missing file is not an error in that case.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(".prettylog")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Resolve validates the values held by v.
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ColorMode:  ColorMode(strings.ToLower(strings.TrimSpace(v.GetString(KeyColorMode)))),
		UTC:        v.GetBool(KeyUTC),
		Timezone:   strings.TrimSpace(v.GetString(KeyTimezone)),
		Async:      v.GetBool(KeyAsync),
		BufferSize: v.GetInt(KeyBufferSize),
		Follow:     v.GetBool(KeyFollow),
		LogLevel:   logger.ParseLevel(v.GetString(KeyLogLevel)),
		Output:     strings.TrimSpace(v.GetString(KeyOutput)),
		MaxSize:    v.GetInt64(KeyMaxSize),
		MaxBackups: v.GetInt(KeyMaxBackups),
		Tee:        v.GetBool(KeyTee),
		NoColor:    v.GetString(keyNoColorEnv) != "",
	}

	switch cfg.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid %s %q (want auto, always or never)", KeyColorMode, cfg.ColorMode)
	}

	policy, err := pipeline.ParsePolicy(v.GetString(KeyOnError))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyOnError, err)
	}
	cfg.OnError = policy

	if cfg.BufferSize <= 0 {
		return nil, fmt.Errorf("invalid %s %d (must be positive)", KeyBufferSize, cfg.BufferSize)
	}

	if cfg.MaxSize < 0 || cfg.MaxBackups < 0 {
		return nil, fmt.Errorf("invalid rotation limits %s=%d %s=%d (must not be negative)",
			KeyMaxSize, cfg.MaxSize, KeyMaxBackups, cfg.MaxBackups)
	}

	switch {
	case cfg.Timezone != "":
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyTimezone, err)
		}
		cfg.location = loc
	case cfg.UTC:
		cfg.location = time.UTC
	default:
		cfg.location = time.Local
	}

	return cfg, nil
}

// UseColor reports whether output should be colored when stdout is (or
// is not) a terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal && !c.NoColor
	}
}

// Location is the display time zone.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}
