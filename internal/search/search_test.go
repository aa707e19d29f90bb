// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

func init() {
	color.NoColor = true
}

type fakeCatalog struct {
	tables []types.TableInfo
	err    error

	gotWord  string
	gotLimit int
	calls    int
}

func (f *fakeCatalog) SearchTables(_ context.Context, word string, limit int) ([]types.TableInfo, error) {
	f.calls++
	f.gotWord = word
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := make([]types.TableInfo, len(f.tables))
	copy(out, f.tables)
	return out, nil
}

var cpiTarget = types.Target{
	Key:        "CPI_",
	SearchWord: "消費者物価指数",
	Hint:       "Recommended: Look for [中分類]",
	Recommend:  "中分類",
}

func threeTables() []types.TableInfo {
	return []types.TableInfo{
		{ID: "id-2023", Title: "基本分類", UpdatedDate: "20230101"},
		{ID: "id-2024", Title: "中分類", UpdatedDate: "20240601"},
		{ID: "id-2022", Title: "大分類", UpdatedDate: "20220101"},
	}
}

func newTestSelector(cat Catalog, input string) (*Selector, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSelector(cat, 30, strings.NewReader(input), console.New(&out)), &out
}

func TestSelect_PicksIndexFromSortedList(t *testing.T) {
	cat := &fakeCatalog{tables: threeTables()}
	s, out := newTestSelector(cat, "0\n")

	id, err := s.Select(context.Background(), cpiTarget)
	require.NoError(t, err)
	assert.Equal(t, "id-2024", id)

	assert.Equal(t, "消費者物価指数", cat.gotWord)
	assert.Equal(t, 30, cat.gotLimit)

	text := out.String()
	assert.Contains(t, text, "🔍 Searching for: [CPI_] ...")
	assert.Contains(t, text, "(Hint: Recommended: Look for [中分類])")
	assert.Contains(t, text, "✅ Selected ID: id-2024")

	// Rendered order is newest first at indices 0, 1, 2.
	i0 := strings.Index(text, "   0    | ★    | 20240601")
	i1 := strings.Index(text, "   1    |      | 20230101")
	i2 := strings.Index(text, "   2    |      | 20220101")
	require.True(t, i0 >= 0 && i1 >= 0 && i2 >= 0, text)
	assert.Less(t, i0, i1)
	assert.Less(t, i1, i2)
}

func TestSelect_RejectsOutOfRangeThenAccepts(t *testing.T) {
	s, out := newTestSelector(&fakeCatalog{tables: threeTables()}, "3\n-1\nabc\n\n2\n")

	id, err := s.Select(context.Background(), cpiTarget)
	require.NoError(t, err)
	assert.Equal(t, "id-2022", id)
	assert.Equal(t, 4, strings.Count(out.String(), "❌ Invalid ID. Please try again."))
	assert.Equal(t, 5, strings.Count(out.String(), "👉 Enter ID for [CPI_] (Enter 's' to skip): "))
}

func TestSelect_Skip(t *testing.T) {
	for _, input := range []string{"s\n", "S\n", "s"} {
		t.Run(input, func(t *testing.T) {
			s, out := newTestSelector(&fakeCatalog{tables: threeTables()}, input)
			id, err := s.Select(context.Background(), cpiTarget)
			require.NoError(t, err)
			assert.Empty(t, id)
			assert.NotContains(t, out.String(), "Selected ID")
		})
	}
}

func TestSelect_FinalLineWithoutNewline(t *testing.T) {
	s, _ := newTestSelector(&fakeCatalog{tables: threeTables()}, "1")
	id, err := s.Select(context.Background(), cpiTarget)
	require.NoError(t, err)
	assert.Equal(t, "id-2023", id)
}

func TestSelect_InputClosed(t *testing.T) {
	s, _ := newTestSelector(&fakeCatalog{tables: threeTables()}, "9\n")
	id, err := s.Select(context.Background(), cpiTarget)
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Empty(t, id)
}

func TestSelect_SearchErrorSkipsPrompt(t *testing.T) {
	boom := errors.New("connection refused")
	s, out := newTestSelector(&fakeCatalog{err: boom}, "0\n")

	id, err := s.Select(context.Background(), cpiTarget)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, id)
	assert.NotContains(t, out.String(), "Enter ID")
}

func TestSelect_MissingIdentifier(t *testing.T) {
	s, _ := newTestSelector(&fakeCatalog{tables: []types.TableInfo{{Title: "no id"}}}, "0\n")
	_, err := s.Select(context.Background(), cpiTarget)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no identifier")
}

func TestSelect_EmptyListOnlyAcceptsSkip(t *testing.T) {
	s, out := newTestSelector(&fakeCatalog{tables: []types.TableInfo{}}, "0\ns\n")
	id, err := s.Select(context.Background(), cpiTarget)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Contains(t, out.String(), "❌ Invalid ID")
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  Choice
	}{
		{"first", "0", 3, Choice{Index: 0, Valid: true}},
		{"last", "2\n", 3, Choice{Index: 2, Valid: true}},
		{"crlf", "1\r\n", 3, Choice{Index: 1, Valid: true}},
		{"leading zero", "01", 3, Choice{Index: 1, Valid: true}},
		{"full-width digit", "１", 3, Choice{Index: 1, Valid: true}},
		{"out of range", "3", 3, Choice{}},
		{"negative", "-1", 3, Choice{}},
		{"plus sign", "+1", 3, Choice{}},
		{"surrounding space", " 1", 3, Choice{}},
		{"empty", "", 3, Choice{}},
		{"word", "one", 3, Choice{}},
		{"overflow", "99999999999999999999999", 3, Choice{}},
		{"skip lower", "s", 3, Choice{Skip: true}},
		{"skip upper", "S\n", 3, Choice{Skip: true}},
		{"skip word", "skip", 3, Choice{}},
		{"zero tables", "0", 0, Choice{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseChoice(tt.input, tt.n))
		})
	}
}
