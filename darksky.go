// Package darksky is an unofficial client for the Dark Sky (formerly
// forecast.io) weather API. It builds the request URL, performs a single
// HTTPS GET and decodes the JSON response into typed structures; caching,
// retries and key management are left to the caller.
package darksky

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.darksky.net"

// errorBodyLimit caps how much of an error response body is kept on a
// TransportError.
const errorBodyLimit = 512

// Doer performs a single HTTP request. *http.Client satisfies it; tests
// and callers with custom transports can substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues forecast requests against the Dark Sky API. A Client is
// safe for concurrent use: each call owns its own request and response
// data, and the optional rate limiter is concurrency-safe.
type Client struct {
	token   string
	baseURL string
	client  Doer
	limiter *rate.Limiter
	logger  *zap.Logger
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests and
// API-compatible providers.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient substitutes the transport used to perform requests.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) { c.client = d }
}

// WithLogger attaches a structured logger. The default is a no-op.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithRateLimit throttles outgoing requests to rps requests per second
// with the given burst. Calls block on the limiter until permitted or the
// context is done. Dark Sky meters API keys per day, so callers doing
// bulk time-machine queries typically want this.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// New creates a Client for the given API token.
func New(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Forecast fetches current conditions and the forecast for a coordinate
// pair. Coordinate ranges are not validated locally; the API reports
// out-of-range values in its error payload.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, opts ...RequestOption) (*Forecast, error) {
	c.logger.Debug("fetching forecast",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return c.get(ctx, c.forecastURL(lat, lon, nil, opts))
}

// TimeMachine fetches observed or forecasted conditions for a coordinate
// pair at an arbitrary point in time, past or future.
func (c *Client) TimeMachine(ctx context.Context, lat, lon float64, t time.Time, opts ...RequestOption) (*Forecast, error) {
	c.logger.Debug("fetching time machine forecast",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Time("time", t))

	at := t.Unix()
	return c.get(ctx, c.forecastURL(lat, lon, &at, opts))
}

func (c *Client) get(ctx context.Context, url string) (*Forecast, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("forecast request failed", zap.Error(err))
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("forecast request rejected",
			zap.Int("status", resp.StatusCode))
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       truncate(body, errorBodyLimit),
		}
	}

	return ParseForecast(body)
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
