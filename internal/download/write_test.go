// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"bytes"
	"os"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CPI_.csv")

	table := &Table{
		Header: []string{"時間軸（月次）", "value"},
		Rows: [][]string{
			{"2024年1月", "105.9"},
			{"2024年2月", "has,comma"},
		},
	}
	require.NoError(t, WriteCSV(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM), "file must start with a UTF-8 BOM")
	assert.Equal(t, "時間軸（月次）,value\n2024年1月,105.9\n2024年2月,\"has,comma\"\n", string(data[len(utf8BOM):]))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteCSV_FlushesLargeTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.csv")

	table := &Table{Header: []string{"時間軸（月次）", "値"}}
	var want strings.Builder
	want.WriteString("時間軸（月次）,値\n")
	for i := 0; i < 5000; i++ {
		row := []string{fmt.Sprintf("%d年%d月", 1990+i/12, i%12+1), fmt.Sprintf("%d.%d", 100+i, i%10)}
		table.Rows = append(table.Rows, row)
		want.WriteString(row[0] + "," + row[1] + "\n")
	}
	require.NoError(t, WriteCSV(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM))
	assert.Equal(t, 1, bytes.Count(data, utf8BOM), "BOM is written once")
	assert.Equal(t, want.String(), string(data[len(utf8BOM):]))
}

func TestWriteCSV_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(filepath.Join(dir, "out.csv"), &Table{Header: []string{"a"}, Rows: [][]string{{"1"}}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.csv", entries[0].Name())
}

func TestWriteCSV_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "x.csv")
	require.NoError(t, WriteCSV(path, &Table{Header: []string{"a"}}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteCSV_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))
	require.NoError(t, WriteCSV(path, &Table{Header: []string{"new"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data[len(utf8BOM):]))
}
