// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformed reports a payload that could not be parsed as CSV, neither
// as-is nor with its first line removed.
var ErrMalformed = errors.New("malformed CSV payload")

var errNoHeader = errors.New("no header line")

// Table is a parsed CSV payload.
type Table struct {
	Header []string
	Rows   [][]string

	// SkippedLines counts data lines dropped for having more fields than
	// the header.
	SkippedLines int
}

// ParseTable parses content as CSV with a header line. Data lines with
// more fields than the header are skipped; shorter lines are padded with
// empty fields. When parsing fails, it retries once without the first line,
// which handles payloads that start with a stray non-CSV line. Failure of
// the retry is reported as ErrMalformed.
func ParseTable(content string) (*Table, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	table, err := parseCSV(content)
	if err == nil {
		return table, nil
	}

	table, retryErr := parseCSV(skipFirstLine(content))
	if retryErr != nil {
		return nil, fmt.Errorf("%w: %v; without first line: %v", ErrMalformed, err, retryErr)
	}
	return table, nil
}

// parseCSV fails on a missing header, or when every data line was rejected
// for having too many fields. The latter differs from a plain read of such
// a payload, which would yield an empty table; failing instead lets
// ParseTable retry without the first line, where a one-field noise line
// has been taken for the header. Quotes inside unquoted fields are kept as
// literal characters.
func parseCSV(content string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(header) {
			t.SkippedLines++
			continue
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}

	if len(t.Rows) == 0 && t.SkippedLines > 0 {
		return nil, fmt.Errorf("all %d data lines have more fields than the %d-field header", t.SkippedLines, len(header))
	}
	return t, nil
}

func skipFirstLine(content string) string {
	idx := strings.IndexByte(content, '\n')
	if idx < 0 {
		return ""
	}
	return content[idx+1:]
}
