package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mlb-stats-client/internal/metrics"
	"mlb-stats-client/internal/timeutil"
)

// Config controls how the client reaches the MLB Stats API.
type Config struct {
	BaseURL      string
	UserAgent    string
	HTTPClient   *http.Client
	HTTPTimeout  time.Duration
	MaxRetries   int
	PlaysWorkers int
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
}

// Client fetches MLB Stats API payloads and normalizes them into tables.
// Logger and Metrics are optional; a nil recorder/logger disables them.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
	eastern    *time.Location
	maxRetries int
	workers    int
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.HTTPTimeout),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
		eastern:    timeutil.Eastern(),
		maxRetries: resolveMaxRetries(cfg.MaxRetries),
		workers:    resolveWorkers(cfg.PlaysWorkers),
	}
}

// getJSON fetches rawURL and decodes the body into out, recording per-endpoint
// call metrics.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out any) error {
	start := time.Now()
	err := c.fetchJSON(ctx, endpoint, rawURL, out)
	c.metrics.RecordCall(endpoint, time.Since(start), err)
	return err
}

func (c *Client) fetchJSON(ctx context.Context, endpoint, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.do(req, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("statsapi: decoding %s: %w", rawURL, err)
	}
	return nil
}
