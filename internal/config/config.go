// Package config loads runtime settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Log formats accepted by SIGNAURA_LOG_FORMAT.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds the settings shared by every signaura command.
type Config struct {
	Addr           string        `env:"SIGNAURA_ADDR" envDefault:":8080"`
	SessionSecret  string        `env:"SIGNAURA_SESSION_SECRET"`
	SessionTTL     time.Duration `env:"SIGNAURA_SESSION_TTL" envDefault:"30m"`
	AnalysisDelay  time.Duration `env:"SIGNAURA_ANALYSIS_DELAY" envDefault:"2s"`
	MaxUploadBytes int64         `env:"SIGNAURA_MAX_UPLOAD_BYTES" envDefault:"10485760"`
	LogLevel       string        `env:"SIGNAURA_LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"SIGNAURA_LOG_FORMAT" envDefault:"json"`
	Record         bool          `env:"SIGNAURA_RECORD" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SIGNAURA_SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.AnalysisDelay < 0 {
		errs = append(errs, fmt.Errorf("SIGNAURA_ANALYSIS_DELAY must not be negative, got %s", c.AnalysisDelay))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("SIGNAURA_MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatJSON, LogFormatText:
	default:
		errs = append(errs, fmt.Errorf("SIGNAURA_LOG_FORMAT must be %q or %q, got %q", LogFormatJSON, LogFormatText, c.LogFormat))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("SIGNAURA_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// Secret returns the configured session secret, or a random one when none is
// set. A random secret invalidates every cookie on restart.
func (c Config) Secret() ([]byte, bool, error) {
	if c.SessionSecret != "" {
		return []byte(c.SessionSecret), false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, false, fmt.Errorf("generate session secret: %w", err)
	}
	return []byte(hex.EncodeToString(buf)), true, nil
}
