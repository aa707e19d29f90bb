// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteCSV writes t to path as UTF-8 with a byte-order mark, header first,
// so spreadsheet applications detect the encoding. The file is written to a
// temporary name and renamed into place on success.
func WriteCSV(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".download-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	enc := transform.NewWriter(tmpFile, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(enc)
	writeErr := cw.Write(t.Header)
	if writeErr == nil {
		writeErr = cw.WriteAll(t.Rows)
	}
	encErr := enc.Close()
	chmodErr := tmpFile.Chmod(0o644)
	closeErr := tmpFile.Close()

	for _, e := range []struct {
		err  error
		what string
	}{
		{writeErr, "writing CSV"},
		{encErr, "encoding CSV"},
		{chmodErr, "setting permissions"},
		{closeErr, "closing temp file"},
	} {
		if e.err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("%s: %w", e.what, e.err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
