// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download fetches a table's CSV rendering and saves it as
// <key>.csv. It implements the fetch-and-save step of a fetcher run.
package download

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrAPIError reports a payload that carries an e-Stat error message
// instead of table data.
var ErrAPIError = errors.New("API error (ID might be invalid or expired)")

// Fetcher downloads the CSV rendering of a statistics table.
type Fetcher interface {
	FetchSimpleData(ctx context.Context, statsDataID string, limit int) ([]byte, error)
}

// Result describes the outcome of a Save call.
type Result struct {
	// Path is the written file; empty when nothing was saved.
	Path string

	// Rows is the number of data rows written, excluding the header.
	Rows int

	// SkippedLines counts data lines dropped for having more fields than
	// the header.
	SkippedLines int

	// Empty is set when the download parsed but held no data rows.
	Empty bool
}

// Saved reports whether a file was written.
func (r Result) Saved() bool {
	return r.Path != ""
}

// Saver downloads tables and writes them into a directory.
type Saver struct {
	fetcher  Fetcher
	rowLimit int
	dir      string
}

// NewSaver returns a Saver requesting at most rowLimit rows per table and
// writing files into dir.
func NewSaver(fetcher Fetcher, rowLimit int, dir string) *Saver {
	if dir == "" {
		dir = "."
	}
	return &Saver{fetcher: fetcher, rowLimit: rowLimit, dir: dir}
}

// Path returns the file a table saved under key is written to.
func (s *Saver) Path(key string) string {
	return filepath.Join(s.dir, key+".csv")
}

// Save downloads table statsDataID and writes it as <key>.csv. An empty
// statsDataID is a no-op. A table with no data rows is reported through
// Result.Empty and is not written; it is not an error.
func (s *Saver) Save(ctx context.Context, key, statsDataID string) (Result, error) {
	if statsDataID == "" {
		return Result{}, nil
	}
	if err := checkKey(key); err != nil {
		return Result{}, err
	}

	body, err := s.fetcher.FetchSimpleData(ctx, statsDataID, s.rowLimit)
	if err != nil {
		return Result{}, err
	}
	if !utf8.Valid(body) {
		return Result{}, fmt.Errorf("decoding response: body is not valid UTF-8")
	}

	content := string(body)
	if IsAPIError(content) {
		return Result{}, ErrAPIError
	}

	table, err := ParseTable(content)
	if err != nil {
		return Result{}, err
	}
	if len(table.Rows) == 0 {
		return Result{Empty: true}, nil
	}

	path := s.Path(key)
	if err := WriteCSV(path, table); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}
	return Result{Path: path, Rows: len(table.Rows), SkippedLines: table.SkippedLines}, nil
}

// IsAPIError applies the e-Stat error heuristic: an error payload mentions
// both a RESULT block and an ERROR_MSG field.
func IsAPIError(content string) bool {
	return strings.Contains(content, "RESULT") && strings.Contains(content, "ERROR_MSG")
}

func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid target key %q: must be a plain file name", key)
	}
	return nil
}
