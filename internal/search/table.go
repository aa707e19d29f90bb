// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

const (
	maxTitleRunes = 60
	ruleWidth     = 100
	recommendMark = "★"
)

// SortByUpdated orders tables newest first by comparing update date strings
// lexically. Tables without a date sort last; ties keep API order.
func SortByUpdated(tables []types.TableInfo) {
	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].SortKey() > tables[j].SortKey()
	})
}

// FormatTable writes tables as an indexed list to w. Titles containing
// recommend are flagged with a star; an empty recommend flags nothing.
func FormatTable(tables []types.TableInfo, recommend string, w io.Writer) {
	fmt.Fprintf(w, "   %-4s | %-4s | %-12s | %s\n", "ID", "Rec", "Date", "Table Name")
	fmt.Fprintln(w, "   "+strings.Repeat("-", ruleWidth))

	for i, t := range tables {
		name := t.DisplayName()
		mark := ""
		if recommend != "" && strings.Contains(name, recommend) {
			mark = recommendMark
		}
		fmt.Fprintf(w, "   %-4d | %-4s | %-12s | %s\n", i, mark, t.DisplayDate(), truncate(name, maxTitleRunes))
	}
}

// FormatJSON writes tables as indented JSON to w. A nil slice is written
// as an empty array.
func FormatJSON(tables []types.TableInfo, w io.Writer) error {
	if tables == nil {
		tables = []types.TableInfo{}
	}
	return console.WriteJSON(w, tables)
}

// FormatYAML writes tables as a YAML sequence to w.
func FormatYAML(tables []types.TableInfo, w io.Writer) error {
	return console.WriteYAML(w, tables)
}

// truncate shortens s to max characters followed by "..".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + ".."
}
