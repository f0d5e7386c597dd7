package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldEndpoint   = "endpoint"
	FieldURL        = "url"
	FieldGameID     = "game_id"
	FieldSeason     = "season"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
)
