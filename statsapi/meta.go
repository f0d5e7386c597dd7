package statsapi

import (
	"context"

	"mlb-stats-client/domain/meta"
)

// Sports fetches the upstream sports listing. A payload without the "sports"
// key is a shape error; an empty listing is an empty table.
func (c *Client) Sports(ctx context.Context) (meta.SportTable, error) {
	u := c.baseURL + sportsPath

	var payload sportsResponse
	if err := c.getJSON(ctx, endpointSports, u, &payload); err != nil {
		return nil, err
	}
	if payload.Sports == nil {
		return nil, &ShapeError{URL: u, Key: "sports"}
	}

	table := make(meta.SportTable, 0, len(payload.Sports))
	for _, s := range payload.Sports {
		table = append(table, meta.Sport(s))
	}
	return table, nil
}

// SportByID fetches the sports listing and returns the matching row, or nil
// when the ID is not listed upstream.
func (c *Client) SportByID(ctx context.Context, id int64) (*meta.Sport, error) {
	table, err := c.Sports(ctx)
	if err != nil {
		return nil, err
	}
	return table.ByID(id), nil
}

// GameTypes fetches the game-type listing (the endpoint returns a bare JSON
// array).
func (c *Client) GameTypes(ctx context.Context) ([]meta.GameType, error) {
	var payload []gameTypeResponse
	if err := c.getJSON(ctx, endpointGameTypes, c.baseURL+gameTypesPath, &payload); err != nil {
		return nil, err
	}

	types := make([]meta.GameType, 0, len(payload))
	for _, gt := range payload {
		types = append(types, meta.GameType(gt))
	}
	return types, nil
}
