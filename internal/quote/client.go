// Package quote fetches the quote shown when a session starts.
package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// ErrUnavailable wraps every failure to produce a quote.
var ErrUnavailable = errors.New("quote unavailable")

// Fallback is shown whenever the quote service cannot be used.
var Fallback = Quote{
	Content: "Words are a lens to focus one's mind.",
	Author:  "Ayn Rand",
}

type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (q Quote) String() string {
	return fmt.Sprintf(`"%s" - %s`, q.Content, q.Author)
}

type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
}

type Client struct {
	httpClient    *resty.Client
	retryAttempts uint
	logger        *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(config.BaseURL, "/"))
	client.SetHeader("Accept", "application/json")
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	return &Client{
		httpClient:    client,
		retryAttempts: config.RetryAttempts,
		logger:        logger.With("component", "quote"),
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Daily returns a random quote, or Fallback when none can be fetched.
func (client *Client) Daily(ctx context.Context) Quote {
	q, err := client.Random(ctx)
	if err != nil {
		client.logger.DebugContext(ctx, "using fallback quote", slog.Any("error", err))
		return Fallback
	}
	return q
}

// DailyWithin is Daily bounded by wait. When no quote arrives in time the
// request is cancelled and Fallback is returned.
func (client *Client) DailyWithin(ctx context.Context, wait time.Duration) Quote {
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	return client.Daily(ctx)
}

// Random fetches one quote. Server errors and transport failures are retried
// up to the configured number of attempts; other failures are returned at once.
func (client *Client) Random(ctx context.Context) (Quote, error) {
	var result Quote
	if err := retry.Do(
		func() error {
			q, err := client.random(ctx)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = q
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.retryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(retry.BackOffDelay),
	); err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return result, nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("response error %d", e.code)
}

func isRetryableError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500
	}
	return !errors.Is(err, errEmptyQuote)
}

var errEmptyQuote = errors.New("empty quote")

func (client *Client) random(ctx context.Context) (Quote, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&Quote{}).
		Get("/random")
	if err != nil {
		return Quote{}, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return Quote{}, &statusError{code: response.StatusCode()}
	}

	q, ok := response.Result().(*Quote)
	if !ok || q == nil || strings.TrimSpace(q.Content) == "" {
		return Quote{}, errEmptyQuote
	}
	return *q, nil
}
