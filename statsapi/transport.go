package statsapi

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveUserAgent(ua string) string {
	if ua == "" {
		return defaultUserAgent
	}
	return ua
}

// resolveMaxRetries treats the zero value as "use the default"; pass a
// negative count to disable retries entirely.
func resolveMaxRetries(n int) int {
	if n == 0 {
		return defaultMaxRetries
	}
	if n < 0 {
		return 0
	}
	return n
}

func resolveWorkers(n int) int {
	if n <= 0 {
		return defaultWorkers
	}
	return n
}

// do issues the request, retrying transport errors, 429s and 5xx responses
// with exponential backoff. It only ever returns a 200 response.
func (c *Client) do(req *http.Request, endpoint string) (*http.Response, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)),
		req.Context(),
	)

	var resp *http.Response
	operation := func() error {
		r, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		if r.StatusCode == http.StatusOK {
			resp = r
			return nil
		}

		if r.StatusCode == http.StatusTooManyRequests {
			c.metrics.RecordRateLimit(endpoint, parseRetryAfter(r.Header.Get("Retry-After")))
		}
		drainBody(r)

		statusErr := &StatusError{URL: req.URL.String(), StatusCode: r.StatusCode}
		if r.StatusCode == http.StatusTooManyRequests || r.StatusCode >= 500 {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return resp, nil
}

func drainBody(r *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, 4096))
	_ = r.Body.Close()
}

func parseRetryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
