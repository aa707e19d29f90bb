// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Target is one dataset the fetcher searches for and downloads.
type Target struct {
	// Key names the output file (<key>.csv) and labels console output.
	Key string `json:"key" yaml:"key" mapstructure:"key" validate:"required,excludesall=/\\"`

	// SearchWord is the phrase sent to the search endpoint.
	SearchWord string `json:"search_word" yaml:"search_word" mapstructure:"search_word" validate:"required"`

	// Hint is shown to the user before the result list.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty" mapstructure:"hint"`

	// Recommend marks results whose title contains it. It never affects
	// which result is selected.
	Recommend string `json:"recommend,omitempty" yaml:"recommend,omitempty" mapstructure:"recommend"`
}

// Reminder is printed after all targets have been processed.
type Reminder struct {
	Title string `json:"title" yaml:"title" mapstructure:"title" validate:"required"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty" mapstructure:"url" validate:"omitempty,url"`
}

// DefaultTargets returns the built-in target table: household consumption
// and the consumer price index.
func DefaultTargets() []Target {
	return []Target{
		{
			Key:        "Consumption",
			SearchWord: "家計調査 二人以上の世帯 月次",
			Hint:       "Recommended: Look for [用途分類（総数）] (Check the latest date)",
			Recommend:  "総数",
		},
		{
			Key:        "CPI_",
			SearchWord: "消費者物価指数",
			Hint:       "Recommended: Look for [中分類] or [基本分類] (Check the latest date)",
			Recommend:  "中分類",
		},
	}
}

// DefaultReminders returns the datasets that cannot be fetched through the
// API and must be downloaded by hand.
func DefaultReminders() []Reminder {
	return []Reminder{
		{
			Title: "[毎月勤労統計調査] needs manual download:",
			URL:   "https://www.e-stat.go.jp/stat-search/files?page=1&layout=datalist&toukei=00450071&tstat=000001011791&cycle=0&tclass1=000001218880&tclass2val=0",
		},
	}
}
