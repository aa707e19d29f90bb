// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for estat-fetcher.
// Implements: search-and-select (Target, TableInfo);
//
//	fetch-and-save (DownloadRecord);
//	configuration (Config and its sections).
package types

// MissingDate is the sort key used for tables that carry no update date.
// It sorts after every real date when ordering newest first.
const MissingDate = "0000"

// TableInfo is one statistical table returned by the getStatsList endpoint.
// It lives only for the duration of a single search.
type TableInfo struct {
	// ID is the opaque statsDataId ("@id") passed to the data endpoint.
	ID string `json:"id" yaml:"id"`

	// Title is the table title, already resolved from the TITLE field.
	Title string `json:"title" yaml:"title"`

	// StatisticsName is the survey name used when the title is empty.
	StatisticsName string `json:"statistics_name,omitempty" yaml:"statistics_name,omitempty"`

	// UpdatedDate is the raw UPDATED_DATE string (e.g. "2024-06-07").
	// Ordering compares it lexically; it is never parsed.
	UpdatedDate string `json:"updated_date,omitempty" yaml:"updated_date,omitempty"`
}

// DisplayName returns the title, falling back to the statistics name and
// then to "Untitled".
func (t TableInfo) DisplayName() string {
	if t.Title != "" {
		return t.Title
	}
	if t.StatisticsName != "" {
		return t.StatisticsName
	}
	return "Untitled"
}

// SortKey returns the update date used for ordering.
func (t TableInfo) SortKey() string {
	if t.UpdatedDate == "" {
		return MissingDate
	}
	return t.UpdatedDate
}

// DisplayDate returns the update date for rendering, or "N/A".
func (t TableInfo) DisplayDate() string {
	if t.UpdatedDate == "" {
		return "N/A"
	}
	return t.UpdatedDate
}
