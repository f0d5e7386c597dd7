package statsapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"mlb-stats-client/domain/plays"
	"mlb-stats-client/internal/logging"
)

// Plays fetches the live feed for each game concurrently and normalizes it
// into a per-game play-by-play table. Failed games are skipped with a
// warning: the partial map is always returned, together with a joined error
// the caller may inspect or ignore.
func (c *Client) Plays(ctx context.Context, gameIDs []int64) (map[int64]plays.Table, error) {
	tables := make(map[int64]plays.Table, len(gameIDs))
	errs := make([]error, len(gameIDs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, c.workers)

	for i, id := range gameIDs {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			table, err := c.playsForGame(ctx, id)
			if err != nil {
				logging.Warn(c.logger, "live feed fetch failed",
					slog.Int64(logging.FieldGameID, id),
					"error", err,
				)
				errs[i] = fmt.Errorf("game %d: %w", id, err)
				return
			}

			mu.Lock()
			tables[id] = table
			mu.Unlock()
		}(i, id)
	}
	wg.Wait()

	return tables, errors.Join(errs...)
}

func (c *Client) playsForGame(ctx context.Context, gameID int64) (plays.Table, error) {
	u := c.baseURL + fmt.Sprintf(liveFeedPath, gameID)

	var payload feedResponse
	if err := c.getJSON(ctx, endpointLiveFeed, u, &payload); err != nil {
		return nil, err
	}
	return mapFeed(payload), nil
}
