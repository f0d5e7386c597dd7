package plays

// Event is one play-by-play row: a pitch, a non-pitch event carrying an
// umpire call, or a synthesized row for a walk completing on a non-pitch
// event. Optional columns are pointers; data the feed omits maps to nil
// uniformly.
type Event struct {
	GameID   int64  `json:"gameId"`
	GameDate string `json:"gameDate"`

	BatterID    *int64  `json:"batterId"`
	BatterName  *string `json:"batterName"`
	BatterHand  *string `json:"batterHand"`
	PitcherID   *int64  `json:"pitcherId"`
	PitcherName *string `json:"pitcherName"`
	PitcherHand *string `json:"pitcherHand"`

	BattingTeam    *string `json:"battingTeam"`
	BattingTeamID  *int64  `json:"battingTeamId"`
	PitchingTeam   *string `json:"pitchingTeam"`
	PitchingTeamID *int64  `json:"pitchingTeamId"`

	Balls        *int `json:"balls"`
	Strikes      *int `json:"strikes"`
	Outs         *int `json:"outs"`
	BallsAfter   *int `json:"ballsAfter"`
	StrikesAfter *int `json:"strikesAfter"`
	OutsAfter    *int `json:"outsAfter"`

	PlayDescription *string `json:"playDescription"`
	PlayCode        *string `json:"playCode"`
	InPlay          *bool   `json:"inPlay"`
	IsStrike        *bool   `json:"isStrike"`
	IsSwing         *bool   `json:"isSwing"`
	IsWhiff         *bool   `json:"isWhiff"`
	IsBall          *bool   `json:"isBall"`
	HasReview       *bool   `json:"hasReview"`

	PitchType        *string  `json:"pitchType"`
	PitchDescription *string  `json:"pitchDescription"`
	StartSpeed       *float64 `json:"startSpeed"`
	EndSpeed         *float64 `json:"endSpeed"`
	StrikeZoneTop    *float64 `json:"szTop"`
	StrikeZoneBottom *float64 `json:"szBot"`
	X                *float64 `json:"x"`
	Y                *float64 `json:"y"`
	AX               *float64 `json:"ax"`
	AY               *float64 `json:"ay"`
	AZ               *float64 `json:"az"`
	PfxX             *float64 `json:"pfxX"`
	PfxZ             *float64 `json:"pfxZ"`
	PX               *float64 `json:"px"`
	PZ               *float64 `json:"pz"`
	VX0              *float64 `json:"vx0"`
	VY0              *float64 `json:"vy0"`
	VZ0              *float64 `json:"vz0"`
	X0               *float64 `json:"x0"`
	Y0               *float64 `json:"y0"`
	Z0               *float64 `json:"z0"`
	Zone             *int     `json:"zone"`
	TypeConfidence   *float64 `json:"typeConfidence"`
	PlateTime        *float64 `json:"plateTime"`
	Extension        *float64 `json:"extension"`
	SpinRate         *float64 `json:"spinRate"`
	SpinDirection    *float64 `json:"spinDirection"`
	BreakVertical    *float64 `json:"breakVertical"`
	BreakInduced     *float64 `json:"breakVerticalInduced"`
	BreakHorizontal  *float64 `json:"breakHorizontal"`

	LaunchSpeed    *float64 `json:"launchSpeed"`
	LaunchAngle    *float64 `json:"launchAngle"`
	LaunchDistance *float64 `json:"launchDistance"`
	LaunchLocation *string  `json:"launchLocation"`
	Trajectory     *string  `json:"trajectory"`
	Hardness       *string  `json:"hardness"`
	HitX           *float64 `json:"hitX"`
	HitY           *float64 `json:"hitY"`

	IndexInPlay *int    `json:"indexInPlay"`
	PlayID      *string `json:"playId"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	IsPitch     *bool   `json:"isPitch"`
	Type        *string `json:"type"`

	// At-bat result columns, populated only on the final event of a play.
	AtBatType *string `json:"atBatType"`
	Event     *string `json:"event"`
	EventType *string `json:"eventType"`
	RBI       *int    `json:"rbi"`
	AwayScore *int    `json:"awayScore"`
	HomeScore *int    `json:"homeScore"`
	IsOut     *bool   `json:"isOut"`
}

// Table is the ordered per-game set of play rows.
type Table []Event

// FinalEvents returns the rows carrying at-bat results.
func (t Table) FinalEvents() Table {
	out := make(Table, 0, len(t))
	for _, e := range t {
		if e.Event != nil {
			out = append(out, e)
		}
	}
	return out
}
