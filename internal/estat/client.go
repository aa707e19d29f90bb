// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package estat is a client for the e-Stat statistics REST API (version 3.0).
// It covers the two endpoints the fetcher uses: getStatsList (JSON table
// search) and getSimpleStatsData (CSV table data).
package estat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/pdiddy/estat-fetcher/internal/httputil"
	"github.com/pdiddy/estat-fetcher/pkg/types"
)

// DefaultBaseURL is the e-Stat REST root used when no base URL is configured.
const DefaultBaseURL = "https://api.e-stat.go.jp/rest/3.0/app"

const (
	statsListPath  = "/json/getStatsList"
	simpleDataPath = "/getSimpleStatsData"
)

var (
	// ErrNoResults reports a search response without a successful status.
	ErrNoResults = errors.New("API returned no results")

	// ErrNoTables reports a successful search response with no tables.
	ErrNoTables = errors.New("no tables found")
)

// APIError is a search response whose RESULT.STATUS is non-zero. It matches
// ErrNoResults under errors.Is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("e-Stat status %d", e.Status)
	}
	return fmt.Sprintf("e-Stat status %d: %s", e.Status, e.Message)
}

// Is lets callers treat every non-zero status as ErrNoResults.
func (e *APIError) Is(target error) bool {
	return target == ErrNoResults
}

// StatusError is an HTTP response with a status other than 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// Client issues requests to the e-Stat API. Each call sends one HTTP request
// (more only when rate-limit retries are configured).
type Client struct {
	http       *resty.Client
	appID      string
	maxRetries int
}

// NewClient returns a client for the given application ID.
func NewClient(appID string, api types.APIConfig, httpCfg types.HTTPConfig) *Client {
	baseURL := api.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	rc := resty.New().SetBaseURL(baseURL)
	if httpCfg.UserAgent != "" {
		rc.SetHeader("User-Agent", httpCfg.UserAgent)
	}
	if httpCfg.Timeout > 0 {
		rc.SetTimeout(httpCfg.Timeout)
	}

	return &Client{
		http:       rc,
		appID:      appID,
		maxRetries: httpCfg.MaxRetries,
	}
}

// SearchTables queries getStatsList for word and returns at most limit
// tables in API order. A single-object TABLE_INF is returned as a
// one-element slice.
func (c *Client) SearchTables(ctx context.Context, word string, limit int) ([]types.TableInfo, error) {
	params := map[string]string{
		"appId":         c.appID,
		"searchWord":    word,
		"limit":         strconv.Itoa(limit),
		"statsNameList": "N",
	}

	body, _, err := c.get(ctx, statsListPath, params)
	if err != nil {
		return nil, fmt.Errorf("getStatsList request: %w", err)
	}
	return decodeStatsList(body)
}

// FetchSimpleData downloads the CSV rendering of table statsDataID with at
// most limit rows. Any HTTP status other than 200 is returned as a
// *StatusError.
func (c *Client) FetchSimpleData(ctx context.Context, statsDataID string, limit int) ([]byte, error) {
	params := map[string]string{
		"appId":             c.appID,
		"statsDataId":       statsDataID,
		"limit":             strconv.Itoa(limit),
		"metaGetFlg":        "Y",
		"sectionHeaderFlg":  "2",
		"explanationGetFlg": "N",
		"annotationGetFlg":  "N",
	}

	body, status, err := c.get(ctx, simpleDataPath, params)
	if err != nil {
		return nil, fmt.Errorf("getSimpleStatsData request: %w", err)
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status}
	}
	return body, nil
}

// get performs one GET, repeating it only on HTTP 429 when retries are
// configured. A final 429 is returned as a normal response.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, int, error) {
	var (
		body   []byte
		status int
	)
	err := httputil.DoWithRetry(ctx, c.maxRetries, func() error {
		res, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(path)
		if err != nil {
			return err
		}
		body, status = res.Body(), res.StatusCode()
		if status == http.StatusTooManyRequests {
			return httputil.ErrRateLimited
		}
		return nil
	})
	if err != nil && !errors.Is(err, httputil.ErrRateLimited) {
		return nil, 0, err
	}
	return body, status, nil
}
