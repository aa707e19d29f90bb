// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search finds candidate tables for a target and asks the user to
// pick one. It implements the search-and-select step of a fetcher run.
package search

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

// ErrNoInput is returned when standard input closes before a choice is made.
var ErrNoInput = errors.New("no input: standard input closed")

// Catalog searches the statistics API for tables.
type Catalog interface {
	SearchTables(ctx context.Context, word string, limit int) ([]types.TableInfo, error)
}

// Selector runs the search, renders the sorted results, and reads the
// user's choice from in.
type Selector struct {
	catalog Catalog
	limit   int
	in      *bufio.Reader
	out     *console.Printer
}

// NewSelector returns a Selector requesting at most limit tables per search.
func NewSelector(catalog Catalog, limit int, in io.Reader, out *console.Printer) *Selector {
	return &Selector{
		catalog: catalog,
		limit:   limit,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Select searches for target and returns the identifier of the table the
// user picked, or "" when the user skipped. Search failures (including
// estat.ErrNoResults and estat.ErrNoTables) are returned to the caller.
func (s *Selector) Select(ctx context.Context, target types.Target) (string, error) {
	s.out.Printf("\n🔍 Searching for: [%s] ...\n", target.Key)
	if target.Hint != "" {
		s.out.Printf("   (Hint: %s)\n", target.Hint)
	}

	tables, err := s.catalog.SearchTables(ctx, target.SearchWord, s.limit)
	if err != nil {
		return "", err
	}

	SortByUpdated(tables)
	s.out.Printf("\n")
	FormatTable(tables, target.Recommend, s.out.Writer())

	idx, err := s.prompt(target.Key, len(tables))
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", nil
	}

	id := tables[idx].ID
	if id == "" {
		return "", fmt.Errorf("table %d has no identifier", idx)
	}
	s.out.Success("✅ Selected ID: %s", id)
	return id, nil
}

// prompt reads lines until one is a valid index or a skip. It returns -1
// for a skip. There is no attempt limit.
func (s *Selector) prompt(key string, n int) (int, error) {
	for {
		s.out.Printf("\n👉 Enter ID for [%s] (Enter 's' to skip): ", key)

		line, err := s.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("reading choice: %w", err)
			}
			if line == "" {
				return 0, ErrNoInput
			}
		}

		choice := ParseChoice(line, n)
		switch {
		case choice.Skip:
			return -1, nil
		case choice.Valid:
			return choice.Index, nil
		}
		s.out.Fail("❌ Invalid ID. Please try again.")
	}
}

// Choice is the interpretation of one line of user input.
type Choice struct {
	Index int
	Skip  bool
	Valid bool
}

// ParseChoice interprets input against a list of n tables. "s" or "S"
// skips; a string of decimal digits (full-width digits included) in
// [0, n) selects that index. Anything else, including signs and
// surrounding spaces, is invalid.
func ParseChoice(input string, n int) Choice {
	input = strings.TrimRight(input, "\r\n")
	if strings.ToLower(input) == "s" {
		return Choice{Skip: true}
	}

	digits := width.Narrow.String(input)
	if digits == "" {
		return Choice{}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Choice{}
		}
	}

	idx, err := strconv.Atoi(digits)
	if err != nil || idx >= n {
		return Choice{}
	}
	return Choice{Index: idx, Valid: true}
}
