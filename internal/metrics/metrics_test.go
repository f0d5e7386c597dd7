package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCall("schedule", 10*time.Millisecond, nil)
	rec.RecordCall("schedule", 15*time.Millisecond, errors.New("boom"))

	if got := rec.Calls("schedule"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.Errors("schedule"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.Stats("schedule").LastCallLatency; got != 15*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %s", got)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("schedule", 2*time.Second)
	rec.RecordRateLimit("schedule", 0)

	if got := rec.RateLimitHits("schedule"); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
	if got := rec.Stats("schedule").LastRetryAfter; got != 2*time.Second {
		t.Fatalf("expected retry-after kept when header missing, got %s", got)
	}
}

func TestRecorderSeparatesEndpoints(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCall("schedule", time.Millisecond, nil)
	rec.RecordCall("liveFeed", time.Millisecond, nil)

	if got := rec.Calls("schedule"); got != 1 {
		t.Fatalf("expected 1 schedule call, got %d", got)
	}
	if got := rec.Calls("liveFeed"); got != 1 {
		t.Fatalf("expected 1 liveFeed call, got %d", got)
	}
	if got := rec.Calls("unknown"); got != 0 {
		t.Fatalf("expected 0 for unseen endpoint, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordCall("schedule", time.Millisecond, nil)
	rec.RecordRateLimit("schedule", time.Second)
	rec.RecordWatchCycle(time.Millisecond, nil)
	if got := rec.Stats("schedule"); got.Calls != 0 {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", got)
	}
}

func TestSetupDisabledReturnsBareRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(nil, TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected no prometheus handler when disabled")
	}
	if err := shutdown(nil); err != nil {
		t.Fatalf("expected noop shutdown, got %v", err)
	}
}

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrEndpoint == "" || AttrStatus == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
}
