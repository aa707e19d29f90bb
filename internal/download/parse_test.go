// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantHeader  []string
		wantRows    [][]string
		wantSkipped int
	}{
		{
			name:       "quoted fields",
			content:    "\"tab_code\",\"時間軸（月次）\",\"value\"\n\"01\",\"2024年1月\",\"105.9\"\n\"01\",\"2024年2月\",\"106.1\"\n",
			wantHeader: []string{"tab_code", "時間軸（月次）", "value"},
			wantRows:   [][]string{{"01", "2024年1月", "105.9"}, {"01", "2024年2月", "106.1"}},
		},
		{
			name:       "leading BOM stripped",
			content:    "\ufeffa,b\n1,2\n",
			wantHeader: []string{"a", "b"},
			wantRows:   [][]string{{"1", "2"}},
		},
		{
			name:       "short lines padded",
			content:    "a,b,c\n1,2\n",
			wantHeader: []string{"a", "b", "c"},
			wantRows:   [][]string{{"1", "2", ""}},
		},
		{
			name:        "long lines skipped",
			content:     "a,b\n1,2\n1,2,3\n4,5\n",
			wantHeader:  []string{"a", "b"},
			wantRows:    [][]string{{"1", "2"}, {"4", "5"}},
			wantSkipped: 1,
		},
		{
			name:       "blank lines ignored",
			content:    "a,b\n\n1,2\n\n",
			wantHeader: []string{"a", "b"},
			wantRows:   [][]string{{"1", "2"}},
		},
		{
			name:       "header only",
			content:    "a,b\n",
			wantHeader: []string{"a", "b"},
		},
		{
			name:       "CRLF line endings",
			content:    "a,b\r\n1,2\r\n",
			wantHeader: []string{"a", "b"},
			wantRows:   [][]string{{"1", "2"}},
		},
		{
			name:       "noise line with a stray quote falls back",
			content:    "note: \"broken\nx,y\n1,2\n",
			wantHeader: []string{"x", "y"},
			wantRows:   [][]string{{"1", "2"}},
		},
		{
			name:       "stray quote inside a data cell is literal",
			content:    "時間軸,値\n2024年1月,10\"5\n2024年2月,101\n",
			wantHeader: []string{"時間軸", "値"},
			wantRows:   [][]string{{"2024年1月", "10\"5"}, {"2024年2月", "101"}},
		},
		{
			name:       "single-field noise line falls back",
			content:    "STATISTICS REPORT\nx,y,z\n1,2,3\n4,5,6\n",
			wantHeader: []string{"x", "y", "z"},
			wantRows:   [][]string{{"1", "2", "3"}, {"4", "5", "6"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTable(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, got.Header)
			assert.Equal(t, tt.wantRows, got.Rows)
			assert.Equal(t, tt.wantSkipped, got.SkippedLines)
		})
	}
}

func TestParseTable_DoubleFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n"},
		{"data wider than header with and without first line", "a\n1,2\n3,4,5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTable(tt.content)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestSkipFirstLine(t *testing.T) {
	assert.Equal(t, "b\nc\n", skipFirstLine("a\nb\nc\n"))
	assert.Equal(t, "", skipFirstLine("only"))
	assert.Equal(t, "", skipFirstLine("a\n"))
}
