// Package dictionary looks words up in a remote dictionary service.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string
	// Timeout of zero leaves requests unbounded.
	Timeout time.Duration
}

// Client sends one GET request per lookup. It does not retry or cache.
type Client struct {
	httpClient *resty.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	httpClient := resty.New()
	if config.Timeout > 0 {
		httpClient.SetTimeout(config.Timeout)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		logger:     logger.With("component", "dictionary"),
	}
}

// Lookup fetches the entries for word, which must be non-empty and trimmed.
func (c *Client) Lookup(ctx context.Context, word string) ([]Entry, error) {
	requestURL := c.baseURL + "/" + url.PathEscape(word)

	res, err := c.httpClient.R().
		EnableTrace().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(requestURL)
	if err != nil {
		c.logger.DebugContext(ctx, "dictionary request failed", slog.String("word", word), slog.Any("error", err))
		return nil, fmt.Errorf("%w: client.R.Get > %w", ErrNetwork, err)
	}

	c.logger.DebugContext(ctx, "dictionary response",
		slog.String("word", word),
		slog.Int("status", res.StatusCode()),
		slog.Duration("elapsed", res.Request.TraceInfo().TotalTime),
	)

	if !res.IsSuccess() {
		return nil, fmt.Errorf("%w: %q, status code: %d", ErrNotFound, word, res.StatusCode())
	}

	var entries []Entry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal > %w", ErrMalformedResponse, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %q, empty response", ErrNotFound, word)
	}
	return entries, nil
}
