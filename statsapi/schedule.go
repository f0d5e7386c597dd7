package statsapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mlb-stats-client/domain/games"
	"mlb-stats-client/internal/timeutil"
)

// ScheduleParams filters the season schedule. Zero-value fields fall back to
// the current year, sport ID 1 (MLB) and regular-season games.
type ScheduleParams struct {
	Years     []int
	SportIDs  []int
	GameTypes []string
}

// ScheduleRangeParams filters the schedule by date range instead of season.
type ScheduleRangeParams struct {
	StartDate time.Time
	EndDate   time.Time
	SportIDs  []int
	GameTypes []string
}

// Schedule fetches the schedule for the requested seasons, one upstream
// request per year, and merges the results into a single table ordered by
// date with duplicate game IDs removed. A failed year fails the whole call;
// no silently partial tables. An empty result is an empty table, not an
// error.
func (c *Client) Schedule(ctx context.Context, params ScheduleParams) (games.Table, error) {
	years := params.Years
	if len(years) == 0 {
		years = []int{c.now().Year()}
	}

	table := make(games.Table, 0)
	for _, year := range years {
		q := c.scheduleQuery(params.SportIDs, params.GameTypes)
		q.Set("season", strconv.Itoa(year))

		payload, err := c.fetchSchedule(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("schedule season %d: %w", year, err)
		}
		table = append(table, mapSchedule(payload, c.eastern)...)
	}
	return table.Normalize(), nil
}

// ScheduleRange fetches the schedule between two dates (inclusive) in a
// single upstream request.
func (c *Client) ScheduleRange(ctx context.Context, params ScheduleRangeParams) (games.Table, error) {
	q := c.scheduleQuery(params.SportIDs, params.GameTypes)
	q.Set("startDate", timeutil.FormatDate(params.StartDate))
	q.Set("endDate", timeutil.FormatDate(params.EndDate))

	payload, err := c.fetchSchedule(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapSchedule(payload, c.eastern).Normalize(), nil
}

func (c *Client) fetchSchedule(ctx context.Context, q url.Values) (scheduleResponse, error) {
	var payload scheduleResponse
	err := c.getJSON(ctx, endpointSchedule, c.baseURL+schedulePath+"?"+q.Encode(), &payload)
	return payload, err
}

func (c *Client) scheduleQuery(sportIDs []int, gameTypes []string) url.Values {
	if len(sportIDs) == 0 {
		sportIDs = []int{1}
	}
	if len(gameTypes) == 0 {
		gameTypes = []string{"R"}
	}

	q := url.Values{}
	q.Set("sportId", csvInts(sportIDs))
	q.Set("gameTypes", strings.Join(gameTypes, ","))
	q.Set("hydrate", scheduleHydrate)
	return q
}

func csvInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
