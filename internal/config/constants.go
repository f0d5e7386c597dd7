package config

import "time"

const (
	envBaseURL      = "MLB_STATS_BASE_URL"
	envUserAgent    = "MLB_STATS_USER_AGENT"
	envHTTPTimeout  = "MLB_STATS_HTTP_TIMEOUT"
	envMaxRetries   = "MLB_STATS_MAX_RETRIES"
	envPlaysWorkers = "MLB_STATS_PLAYS_WORKERS"
	envWatchRate    = "WATCH_INTERVAL"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsPort  = "METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultUserAgent   = "mlb-stats-client/1.0"
	defaultHTTPTimeout = 15 * Duration(time.Second)
	defaultMaxRetries  = 3
	// Bound on concurrent live feed fetches.
	defaultPlaysWorkers  = 8
	defaultWatchInterval = 10 * Duration(time.Second)
	defaultMetricsPort   = "9090"
)
