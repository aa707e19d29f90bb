// Package config loads and validates the fetcher configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/estat-fetcher/internal/estat"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

// PlaceholderAppID is the value shipped in the example configuration. It
// must be replaced with a real application ID before the first run.
const PlaceholderAppID = "YOUR_APP_ID_HERE"

var (
	// ErrMissingAppID is returned when no application ID is configured.
	ErrMissingAppID = errors.New("no e-Stat APP ID configured: set app_id, ESTAT_FETCHER_APP_ID, or .secrets/estat-app-id (apply at https://www.e-stat.go.jp/api/)")

	// ErrPlaceholderAppID is returned when the application ID was never edited.
	ErrPlaceholderAppID = errors.New("please fill in your e-Stat APP ID first (apply at https://www.e-stat.go.jp/api/)")
)

// EnvKeyReplacer maps nested keys to environment names, so that
// api.row_limit is read from ESTAT_FETCHER_API_ROW_LIMIT.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

const (
	defaultUserAgent   = "estat-fetcher/0.1"
	defaultSearchLimit = 30
	defaultRowLimit    = 1000
)

// SetDefaults registers default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app_id", "")
	v.SetDefault("api.base_url", estat.DefaultBaseURL)
	v.SetDefault("api.search_limit", defaultSearchLimit)
	v.SetDefault("api.row_limit", defaultRowLimit)
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("http.user_agent", defaultUserAgent)
	v.SetDefault("http.max_retries", 0)
	v.SetDefault("output.directory", ".")
	v.SetDefault("history.path", "")
}

// Load builds a Config from v. Targets and reminders fall back to the
// built-in tables when the configuration does not list any.
func Load(v *viper.Viper) (*types.Config, error) {
	SetDefaults(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = types.DefaultTargets()
	}
	if !v.IsSet("reminders") {
		cfg.Reminders = types.DefaultReminders()
	}
	cfg.AppID = strings.TrimSpace(cfg.AppID)
	return &cfg, nil
}

// ResolveAppID returns the first candidate that is neither empty nor the
// placeholder, so a real ID from a later source wins over an unedited
// example config. When no candidate qualifies it returns the placeholder
// if one was given, letting CheckAppID report it.
func ResolveAppID(candidates ...string) string {
	fallback := ""
	for _, c := range candidates {
		switch c = strings.TrimSpace(c); c {
		case "":
		case PlaceholderAppID:
			fallback = c
		default:
			return c
		}
	}
	return fallback
}

// CheckAppID rejects an empty or placeholder application ID.
func CheckAppID(appID string) error {
	switch strings.TrimSpace(appID) {
	case "":
		return ErrMissingAppID
	case PlaceholderAppID:
		return ErrPlaceholderAppID
	}
	return nil
}

// Validate checks the application ID and every field constraint of cfg.
func Validate(cfg *types.Config) error {
	if err := CheckAppID(cfg.AppID); err != nil {
		return err
	}
	return ValidateSettings(cfg)
}

// ValidateSettings checks the field constraints of cfg without requiring
// an application ID. Commands that never call the API use it.
func ValidateSettings(cfg *types.Config) error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(cfg); err != nil {
		return translateErrors(err, trans)
	}
	return nil
}
