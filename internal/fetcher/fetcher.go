// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetcher drives a run over the configured targets: search and
// select a table for each target, download it, and report the outcome.
// Failures are printed and the run moves on to the next target.
package fetcher

import (
	"context"
	"errors"
	"time"

	"github.com/pdiddy/estat-fetcher/internal/console"
	"github.com/pdiddy/estat-fetcher/internal/download"
	"github.com/pdiddy/estat-fetcher/internal/estat"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher/mock_fetcher.go -package=mock_fetcher

// Selector searches for a target and returns the chosen table identifier,
// or "" when the user skipped.
type Selector interface {
	Select(ctx context.Context, target types.Target) (string, error)
}

// Saver downloads a table and writes it under the target key.
type Saver interface {
	Save(ctx context.Context, key, statsDataID string) (download.Result, error)
}

// History records completed downloads.
type History interface {
	Record(ctx context.Context, rec types.DownloadRecord) error
	Latest(ctx context.Context, targetKey string) (types.DownloadRecord, bool, error)
}

// Summary counts target outcomes of a run.
type Summary struct {
	Saved   int
	Skipped int
	Empty   int
	Failed  int
}

// Runner processes targets one at a time.
type Runner struct {
	selector  Selector
	saver     Saver
	history   History
	out       *console.Printer
	reminders []types.Reminder
	now       func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithHistory records every saved file in h and shows the last saved
// identifier before each search.
func WithHistory(h History) Option {
	return func(r *Runner) { r.history = h }
}

// WithReminders sets the notes printed after all targets.
func WithReminders(reminders []types.Reminder) Option {
	return func(r *Runner) { r.reminders = reminders }
}

// WithClock overrides the time stamped on history records.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// New returns a Runner. selector may be nil when only Download is used.
func New(selector Selector, saver Saver, out *console.Printer, opts ...Option) *Runner {
	r := &Runner{
		selector: selector,
		saver:    saver,
		out:      out,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every target in order and prints the reminders. It stops
// early only when ctx is cancelled, returning ctx.Err().
func (r *Runner) Run(ctx context.Context, targets []types.Target) (Summary, error) {
	var sum Summary

	r.out.Heading("🚀 Starting Japan Macro Data Fetcher")
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		r.process(ctx, target, &sum)
	}

	for _, rem := range r.reminders {
		r.out.Printf("\n💡 Don't forget: %s\n", rem.Title)
		if rem.URL != "" {
			r.out.Printf("%s\n", rem.URL)
		}
	}
	r.out.Printf("\n")
	r.out.Heading("🏁 All tasks completed.")
	return sum, nil
}

func (r *Runner) process(ctx context.Context, target types.Target, sum *Summary) {
	r.showLast(ctx, target.Key)

	id, err := r.selector.Select(ctx, target)
	if err != nil {
		r.reportSearchError(err)
		sum.Failed++
	}
	if id == "" {
		r.out.Warn("⚠️ Skipped %s", target.Key)
		if err == nil {
			sum.Skipped++
		}
		return
	}

	res, err := r.Download(ctx, target.Key, id)
	switch {
	case err != nil:
		sum.Failed++
	case res.Empty:
		sum.Empty++
	default:
		sum.Saved++
	}
}

// Download saves table statsDataID under key and prints the outcome. The
// returned error has already been reported on the console.
func (r *Runner) Download(ctx context.Context, key, statsDataID string) (download.Result, error) {
	r.out.Printf("⬇️ Downloading (ID: %s)...\n", statsDataID)

	res, err := r.saver.Save(ctx, key, statsDataID)
	if err != nil {
		r.reportDownloadError(err)
		return res, err
	}
	if res.Empty {
		r.out.Warn("⚠️ Download successful but file is empty.")
		return res, nil
	}
	if !res.Saved() {
		return res, nil
	}

	r.out.Success("🎉 Saved: %s (%d rows)", res.Path, res.Rows)
	if res.SkippedLines > 0 {
		r.out.Warn("⚠️ Dropped %d lines with extra fields", res.SkippedLines)
	}
	r.record(ctx, key, statsDataID, res)
	return res, nil
}

func (r *Runner) showLast(ctx context.Context, key string) {
	if r.history == nil {
		return
	}
	rec, ok, err := r.history.Latest(ctx, key)
	if err != nil {
		r.out.Warn("⚠️ History unavailable: %v", err)
		return
	}
	if ok {
		r.out.Printf("\n🕘 Last saved [%s]: ID %s on %s\n", key, rec.StatsDataID, rec.SavedAt.Local().Format("2006-01-02 15:04"))
	}
}

func (r *Runner) record(ctx context.Context, key, statsDataID string, res download.Result) {
	if r.history == nil {
		return
	}
	rec := types.DownloadRecord{
		TargetKey:   key,
		StatsDataID: statsDataID,
		Path:        res.Path,
		Rows:        res.Rows,
		SavedAt:     r.now(),
	}
	if err := r.history.Record(ctx, rec); err != nil {
		r.out.Warn("⚠️ Could not record download: %v", err)
	}
}

func (r *Runner) reportSearchError(err error) {
	switch {
	case errors.Is(err, estat.ErrNoTables):
		r.out.Warn("⚠️ No tables found.")
	case errors.Is(err, estat.ErrNoResults):
		r.out.Fail("❌ API returned no results.")
	default:
		r.out.Fail("❌ Search Error: %v", err)
	}
}

func (r *Runner) reportDownloadError(err error) {
	var statusErr *estat.StatusError
	switch {
	case errors.As(err, &statusErr):
		r.out.Fail("❌ HTTP Error: %d", statusErr.Code)
	case errors.Is(err, download.ErrAPIError):
		r.out.Fail("❌ API Error (ID might be invalid or expired)")
	default:
		r.out.Fail("❌ Download Exception: %v", err)
	}
}
