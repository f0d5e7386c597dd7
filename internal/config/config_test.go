package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.StatsAPI.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultBaseURL, cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.UserAgent != defaultUserAgent {
		t.Fatalf("expected default user agent %s, got %s", defaultUserAgent, cfg.StatsAPI.UserAgent)
	}
	if cfg.StatsAPI.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, cfg.StatsAPI.HTTPTimeout)
	}
	if cfg.StatsAPI.PlaysWorkers != defaultPlaysWorkers {
		t.Fatalf("expected default workers %d, got %d", defaultPlaysWorkers, cfg.StatsAPI.PlaysWorkers)
	}
	if cfg.WatchInterval != defaultWatchInterval {
		t.Fatalf("expected default watch interval %s, got %s", defaultWatchInterval, cfg.WatchInterval)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected default metrics port %s, got %s", defaultMetricsPort, cfg.Metrics.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envBaseURL, "http://example.com/api")
	t.Setenv(envHTTPTimeout, "30s")
	t.Setenv(envMaxRetries, "5")
	t.Setenv(envWatchRate, "45s")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envOtelService, "custom-svc")

	cfg := Load()

	if cfg.StatsAPI.BaseURL != "http://example.com/api" {
		t.Fatalf("expected base url override, got %s", cfg.StatsAPI.BaseURL)
	}
	if cfg.StatsAPI.HTTPTimeout != 30*time.Second {
		t.Fatalf("expected timeout override, got %s", cfg.StatsAPI.HTTPTimeout)
	}
	if cfg.StatsAPI.MaxRetries != 5 {
		t.Fatalf("expected retries override, got %d", cfg.StatsAPI.MaxRetries)
	}
	if cfg.WatchInterval != 45*time.Second {
		t.Fatalf("expected watch interval override, got %s", cfg.WatchInterval)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled")
	}
	if cfg.Metrics.ServiceName != "custom-svc" {
		t.Fatalf("expected service name override, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-duration")
	t.Setenv(envMaxRetries, "-2")

	cfg := Load()

	if cfg.StatsAPI.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout for invalid value, got %s", cfg.StatsAPI.HTTPTimeout)
	}
	if cfg.StatsAPI.MaxRetries != defaultMaxRetries {
		t.Fatalf("expected default retries for invalid value, got %d", cfg.StatsAPI.MaxRetries)
	}
}
