package statsapi

// Wire shapes for the endpoints this client consumes. Optional fields are
// pointers so the mapper can apply one null policy everywhere.

type scheduleResponse struct {
	TotalGames int            `json:"totalGames"`
	Dates      []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date       string         `json:"date"`
	TotalGames int            `json:"totalGames"`
	Games      []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk       int64         `json:"gamePk"`
	GameType     string        `json:"gameType"`
	Season       string        `json:"season"`
	GameDate     string        `json:"gameDate"`
	OfficialDate string        `json:"officialDate"`
	Status       gameStatus    `json:"status"`
	Teams        scheduleTeams `json:"teams"`
	Venue        venueResponse `json:"venue"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	CodedGameState    string `json:"codedGameState"`
	DetailedState     string `json:"detailedState"`
	StartTimeTBD      bool   `json:"startTimeTBD"`
}

type scheduleTeams struct {
	Away scheduleSide `json:"away"`
	Home scheduleSide `json:"home"`
}

type scheduleSide struct {
	Team teamName `json:"team"`
}

type teamName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type venueResponse struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

type sportsResponse struct {
	Sports []sportResponse `json:"sports"`
}

type sportResponse struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"`
	Link         string `json:"link"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	SortOrder    int    `json:"sortOrder"`
	ActiveStatus bool   `json:"activeStatus"`
}

type gameTypeResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Live feed shapes (/api/v1.1/game/{id}/feed/live).

type feedResponse struct {
	GamePk   int64        `json:"gamePk"`
	GameData feedGameData `json:"gameData"`
	LiveData feedLiveData `json:"liveData"`
}

type feedGameData struct {
	Datetime feedDatetime `json:"datetime"`
	Teams    feedTeams    `json:"teams"`
}

type feedDatetime struct {
	OfficialDate string `json:"officialDate"`
}

type feedTeams struct {
	Away feedTeam `json:"away"`
	Home feedTeam `json:"home"`
}

type feedTeam struct {
	ID           *int64  `json:"id"`
	Abbreviation *string `json:"abbreviation"`
}

type feedLiveData struct {
	Plays feedPlays `json:"plays"`
}

type feedPlays struct {
	AllPlays []feedPlay `json:"allPlays"`
}

type feedPlay struct {
	Result     feedResult      `json:"result"`
	About      feedAbout       `json:"about"`
	Matchup    feedMatchup     `json:"matchup"`
	PlayEvents []feedPlayEvent `json:"playEvents"`
}

type feedResult struct {
	Type      *string `json:"type"`
	Event     *string `json:"event"`
	EventType *string `json:"eventType"`
	RBI       *int    `json:"rbi"`
	AwayScore *int    `json:"awayScore"`
	HomeScore *int    `json:"homeScore"`
	IsOut     *bool   `json:"isOut"`
}

type feedAbout struct {
	IsTopInning bool `json:"isTopInning"`
}

type feedMatchup struct {
	Batter    feedPerson `json:"batter"`
	Pitcher   feedPerson `json:"pitcher"`
	BatSide   feedCode   `json:"batSide"`
	PitchHand feedCode   `json:"pitchHand"`
}

type feedPerson struct {
	ID       *int64  `json:"id"`
	FullName *string `json:"fullName"`
}

type feedCode struct {
	Code *string `json:"code"`
}

type feedPlayEvent struct {
	Details   feedDetails    `json:"details"`
	Count     feedCount      `json:"count"`
	PitchData *feedPitchData `json:"pitchData"`
	HitData   *feedHitData   `json:"hitData"`
	Index     *int           `json:"index"`
	PlayID    *string        `json:"playId"`
	StartTime *string        `json:"startTime"`
	EndTime   *string        `json:"endTime"`
	IsPitch   bool           `json:"isPitch"`
	Type      *string        `json:"type"`
}

type feedDetails struct {
	Call        *feedCode      `json:"call"`
	Description *string        `json:"description"`
	Code        *string        `json:"code"`
	IsInPlay    *bool          `json:"isInPlay"`
	IsStrike    *bool          `json:"isStrike"`
	IsBall      *bool          `json:"isBall"`
	HasReview   *bool          `json:"hasReview"`
	Type        *feedPitchType `json:"type"`
}

type feedPitchType struct {
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

type feedCount struct {
	Balls   *int `json:"balls"`
	Strikes *int `json:"strikes"`
	Outs    *int `json:"outs"`
}

type feedPitchData struct {
	StartSpeed       *float64        `json:"startSpeed"`
	EndSpeed         *float64        `json:"endSpeed"`
	StrikeZoneTop    *float64        `json:"strikeZoneTop"`
	StrikeZoneBottom *float64        `json:"strikeZoneBottom"`
	Coordinates      feedPitchCoords `json:"coordinates"`
	Breaks           feedBreaks      `json:"breaks"`
	Zone             *int            `json:"zone"`
	TypeConfidence   *float64        `json:"typeConfidence"`
	PlateTime        *float64        `json:"plateTime"`
	Extension        *float64        `json:"extension"`
}

type feedPitchCoords struct {
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	AX   *float64 `json:"aX"`
	AY   *float64 `json:"aY"`
	AZ   *float64 `json:"aZ"`
	PfxX *float64 `json:"pfxX"`
	PfxZ *float64 `json:"pfxZ"`
	PX   *float64 `json:"pX"`
	PZ   *float64 `json:"pZ"`
	VX0  *float64 `json:"vX0"`
	VY0  *float64 `json:"vY0"`
	VZ0  *float64 `json:"vZ0"`
	X0   *float64 `json:"x0"`
	Y0   *float64 `json:"y0"`
	Z0   *float64 `json:"z0"`
}

type feedBreaks struct {
	SpinRate             *float64 `json:"spinRate"`
	SpinDirection        *float64 `json:"spinDirection"`
	BreakVertical        *float64 `json:"breakVertical"`
	BreakVerticalInduced *float64 `json:"breakVerticalInduced"`
	BreakHorizontal      *float64 `json:"breakHorizontal"`
}

type feedHitData struct {
	LaunchSpeed   *float64      `json:"launchSpeed"`
	LaunchAngle   *float64      `json:"launchAngle"`
	TotalDistance *float64      `json:"totalDistance"`
	Location      *string       `json:"location"`
	Trajectory    *string       `json:"trajectory"`
	Hardness      *string       `json:"hardness"`
	Coordinates   feedHitCoords `json:"coordinates"`
}

type feedHitCoords struct {
	CoordX *float64 `json:"coordX"`
	CoordY *float64 `json:"coordY"`
}
