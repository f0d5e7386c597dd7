package meta

// Sport is one row of the upstream sports listing.
type Sport struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Link         string `json:"link"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	SortOrder    int    `json:"sortOrder"`
	ActiveStatus bool   `json:"activeStatus"`
}

// SportTable is the full sports listing.
type SportTable []Sport

// ByID returns the sport with the given ID, or nil when it is not listed.
func (t SportTable) ByID(id int64) *Sport {
	for i := range t {
		if t[i].ID == id {
			return &t[i]
		}
	}
	return nil
}

// GameType is one row of the upstream game-type listing, e.g. {"R",
// "Regular Season"}.
type GameType struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
