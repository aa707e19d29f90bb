// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DownloadRecord describes one CSV file written by the fetcher.
type DownloadRecord struct {
	// TargetKey is the target the file was downloaded for.
	TargetKey string `json:"target_key" yaml:"target_key"`

	// StatsDataID is the table identifier that was downloaded.
	StatsDataID string `json:"stats_data_id" yaml:"stats_data_id"`

	// Path is the location of the written CSV file.
	Path string `json:"path" yaml:"path"`

	// Rows is the number of data rows written, excluding the header.
	Rows int `json:"rows" yaml:"rows"`

	// SavedAt is when the file was written.
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
}
