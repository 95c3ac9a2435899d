// Package bbref scrapes basketball-reference's daily leaders page into stat lines.
package bbref

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/logging"
	"github.com/ajuarez99/ballknowers/internal/providers"
	"github.com/ajuarez99/ballknowers/internal/timeutil"
)

// Config controls how the client reaches basketball-reference.
type Config struct {
	BaseURL    string
	HTTPClient providers.Doer
	Timeout    time.Duration
	// DebugDir, when set, receives the raw page as debug_response_YYYY-MM-DD.html.
	DebugDir string
	Logger   *slog.Logger
}

// Client fetches and parses daily leaders pages.
type Client struct {
	baseURL    string
	httpClient providers.Doer
	debugDir   string
	logger     *slog.Logger
}

// NewClient constructs a scraper with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		debugDir:   cfg.DebugDir,
		logger:     cfg.Logger,
	}
}

// FetchBoxScores returns every row of the daily leaders table for date.
func (c *Client) FetchBoxScores(ctx context.Context, date string) ([]boxscores.StatLine, error) {
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("bbref: invalid date %q: %w", date, err)
	}

	req, err := c.buildRequest(ctx, day)
	if err != nil {
		return nil, err
	}

	logging.Info(c.logger, "fetching daily leaders", logging.FieldProvider, ProviderName, logging.FieldDate, date, logging.FieldURL, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bbref: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: providers.ParseRetryAfter(resp.Header),
			Message:    "basketball-reference rate limited",
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("bbref: reading body: %w", err)
	}

	c.warnIfBlocked(body, date)
	c.saveDebug(body, date)

	if resp.StatusCode != http.StatusOK {
		return nil, &providers.StatusError{Provider: ProviderName, StatusCode: resp.StatusCode, URL: req.URL.String()}
	}

	parsed, err := Parse(bytes.NewReader(body))
	if err != nil {
		var tnf *TableNotFoundError
		if errors.As(err, &tnf) {
			logging.Warn(c.logger, "daily leaders table missing",
				logging.FieldDate, date,
				"tables", tnf.TableIDs,
				"page_error", tnf.PageError,
				"title", tnf.Title,
			)
		}
		return nil, fmt.Errorf("bbref %s: %w", date, err)
	}

	c.logParsed(parsed, date)
	return parsed.Lines, nil
}

func (c *Client) buildRequest(ctx context.Context, day time.Time) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+dailyLeadersPath, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("month", strconv.Itoa(int(day.Month())))
	q.Set("day", strconv.Itoa(day.Day()))
	q.Set("year", strconv.Itoa(day.Year()))
	req.URL.RawQuery = q.Encode()

	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *Client) warnIfBlocked(body []byte, date string) {
	text := string(body)
	for _, marker := range blockIndicators {
		if strings.Contains(text, marker) {
			logging.Warn(c.logger, "response looks blocked", logging.FieldDate, date, "marker", marker)
		}
	}
	if len(body) < suspiciousBodyBytes {
		logging.Warn(c.logger, "response is suspiciously short", logging.FieldDate, date, "bytes", len(body))
	}
}

func (c *Client) saveDebug(body []byte, date string) {
	if c.debugDir == "" {
		return
	}
	if err := os.MkdirAll(c.debugDir, 0o755); err != nil {
		logging.Warn(c.logger, "debug dir unavailable", "dir", c.debugDir, "error", err)
		return
	}
	path := filepath.Join(c.debugDir, DebugFileName(date))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		logging.Warn(c.logger, "saving debug response failed", "path", path, "error", err)
		return
	}
	logging.Info(c.logger, "saved raw response", "path", path)
}

func (c *Client) logParsed(p Parsed, date string) {
	logging.Info(c.logger, "parsed daily leaders",
		logging.FieldDate, date,
		"table", p.TableID,
		"rows", p.Rows,
		"skipped", p.Skipped,
		logging.FieldCount, len(p.Lines),
	)
	if len(p.RowErrors) == 0 {
		return
	}
	shown := p.RowErrors
	if len(shown) > maxLoggedRowErrors {
		shown = shown[:maxLoggedRowErrors]
	}
	for _, e := range shown {
		logging.Warn(c.logger, "row parse error", logging.FieldDate, date, "error", e.Error())
	}
	logging.Warn(c.logger, "rows failed to parse", logging.FieldDate, date, logging.FieldCount, len(p.RowErrors))
}

// DebugFileName names the raw response file for date.
func DebugFileName(date string) string {
	return "debug_response_" + date + ".html"
}
