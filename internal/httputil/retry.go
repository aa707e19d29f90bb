// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API client.
package httputil

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

// ErrRateLimited marks a request rejected with HTTP 429 (Too Many Requests).
// It is the only error DoWithRetry repeats a request for.
var ErrRateLimited = errors.New("rate limited (HTTP 429)")

// DoWithRetry calls fn once, and again up to maxRetries more times while it
// fails with ErrRateLimited. The delay starts at RetryBaseDelay and doubles
// each attempt.
//
// maxRetries of 0 (the default configuration) calls fn exactly once. Any
// other error is returned immediately. If the context is cancelled during a
// backoff wait the function returns ctx.Err().
func DoWithRetry(ctx context.Context, maxRetries int, fn func() error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(uint(maxRetries)+1),
		retry.Delay(RetryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrRateLimited)
		}),
	)
}
