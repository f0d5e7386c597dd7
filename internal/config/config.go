package config

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL      string
	UserAgent    string
	HTTPTimeout  Duration
	MaxRetries   int
	PlaysWorkers int
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Config holds runtime configuration for the livewatch command.
type Config struct {
	StatsAPI      StatsAPIConfig
	WatchInterval Duration
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		StatsAPI:      loadStatsAPI(),
		WatchInterval: durationEnvOrDefault(envWatchRate, defaultWatchInterval),
		Metrics:       loadMetrics(),
	}
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:      envOrDefault(envBaseURL, defaultBaseURL),
		UserAgent:    envOrDefault(envUserAgent, defaultUserAgent),
		HTTPTimeout:  durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		MaxRetries:   intEnvOrDefault(envMaxRetries, defaultMaxRetries),
		PlaysWorkers: intEnvOrDefault(envPlaysWorkers, defaultPlaysWorkers),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, ""),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
