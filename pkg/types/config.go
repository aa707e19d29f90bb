package types

import "time"

// HTTPConfig holds shared HTTP settings for calls to the statistics API.
type HTTPConfig struct {
	// Timeout is the per-request timeout. Zero waits indefinitely.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "estat-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is how many times a rate-limited (HTTP 429) request is
	// repeated. Zero sends every request exactly once.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// APIConfig holds the e-Stat endpoint settings.
type APIConfig struct {
	// BaseURL is the REST root, e.g. "https://api.e-stat.go.jp/rest/3.0/app".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// SearchLimit caps the number of tables returned by a search (default 30).
	SearchLimit int `json:"search_limit" yaml:"search_limit" mapstructure:"search_limit" validate:"gte=1"`

	// RowLimit caps the number of data rows requested per download (default 1000).
	RowLimit int `json:"row_limit" yaml:"row_limit" mapstructure:"row_limit" validate:"gte=1"`
}

// OutputConfig controls where CSV files are written.
type OutputConfig struct {
	// Directory receives <key>.csv files (default ".").
	Directory string `json:"directory" yaml:"directory" mapstructure:"directory" validate:"required"`
}

// HistoryConfig controls the optional download ledger.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables the ledger.
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`
}

// Enabled reports whether downloads are recorded.
func (c HistoryConfig) Enabled() bool {
	return c.Path != ""
}

// Config groups every setting of a fetcher run.
type Config struct {
	// AppID is the e-Stat application ID sent as appId.
	AppID string `json:"app_id" yaml:"app_id" mapstructure:"app_id"`

	API       APIConfig     `json:"api" yaml:"api" mapstructure:"api"`
	HTTP      HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Output    OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	History   HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Targets   []Target      `json:"targets" yaml:"targets" mapstructure:"targets" validate:"required,min=1,unique=Key,dive"`
	Reminders []Reminder    `json:"reminders" yaml:"reminders" mapstructure:"reminders" validate:"dive"`
}
