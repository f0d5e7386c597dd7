package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls,
// keyed by endpoint name. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordCall increments counters for an upstream call and stores the last
// observed latency.
func (r *Recorder) RecordCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCall(endpoint, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and
// stores the last Retry-After.
func (r *Recorder) RecordRateLimit(endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(endpoint, retryAfter)
	}
}

// RecordWatchCycle tracks one pass of the live watch loop.
func (r *Recorder) RecordWatchCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWatchCycle(duration, err)
}

// Snapshot reports the stats recorded for an endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Stats returns a copy of the recorded stats for an endpoint.
func (r *Recorder) Stats(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[endpoint]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// Calls returns the total attempts recorded for an endpoint.
func (r *Recorder) Calls(endpoint string) int {
	return r.Stats(endpoint).Calls
}

// Errors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) Errors(endpoint string) int {
	return r.Stats(endpoint).Errors
}

// RateLimitHits returns the number of rate limit events seen for an endpoint.
func (r *Recorder) RateLimitHits(endpoint string) int {
	return r.Stats(endpoint).RateLimitHits
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
