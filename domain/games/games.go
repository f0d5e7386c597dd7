package games

import (
	"sort"
	"time"
)

// GameState is the coded game state reported by the upstream status block.
// The enumeration is owned by the upstream API; unknown codes pass through
// verbatim rather than being rejected.
type GameState string

const (
	StateScheduled GameState = "S"
	StatePregame   GameState = "P"
	StateLive      GameState = "I"
	StateFinal     GameState = "F"
	StatePostponed GameState = "D"
	StateGameOver  GameState = "O"
)

// Game is one schedule row. The column set is fixed: responses that omit
// optional fields yield nil/empty values, never a narrower row.
type Game struct {
	GameID    int64     `json:"gameId"`
	Date      string    `json:"date"`
	StartTime time.Time `json:"startTime"`
	StartET   string    `json:"startEt,omitempty"`
	Away      string    `json:"away"`
	Home      string    `json:"home"`
	State     GameState `json:"state"`
	VenueID   *int64    `json:"venueId,omitempty"`
	VenueName string    `json:"venueName,omitempty"`
}

// Table is an ordered set of schedule rows.
type Table []Game

// Normalize sorts rows by official date (then game ID for a stable order)
// and drops duplicate game IDs, keeping the first occurrence. It always
// returns a non-nil table so empty results stay typed.
func (t Table) Normalize() Table {
	out := make(Table, 0, len(t))
	out = append(out, t...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].GameID < out[j].GameID
	})

	seen := make(map[int64]struct{}, len(out))
	deduped := out[:0]
	for _, g := range out {
		if _, ok := seen[g.GameID]; ok {
			continue
		}
		seen[g.GameID] = struct{}{}
		deduped = append(deduped, g)
	}
	return deduped
}

// GameIDs returns the game IDs in table order.
func (t Table) GameIDs() []int64 {
	ids := make([]int64, 0, len(t))
	for _, g := range t {
		ids = append(ids, g.GameID)
	}
	return ids
}
