package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultUserAgent   = "mlb-stats-client/1.0"
	defaultHTTPTimeout = 15 * time.Second
	defaultMaxRetries  = 3
	defaultWorkers     = 8

	schedulePath  = "/api/v1/schedule"
	sportsPath    = "/api/v1/sports"
	gameTypesPath = "/api/v1/gameTypes"
	liveFeedPath  = "/api/v1.1/game/%d/feed/live"

	scheduleHydrate = "lineup,players"
)

// Endpoint names used as metric/log labels.
const (
	endpointSchedule  = "schedule"
	endpointSports    = "sports"
	endpointGameTypes = "gameTypes"
	endpointLiveFeed  = "liveFeed"
)
