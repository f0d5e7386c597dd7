package statsapi

import (
	"time"

	"mlb-stats-client/domain/games"
	"mlb-stats-client/domain/plays"
	"mlb-stats-client/internal/timeutil"
)

// Call codes counting as a swing, and the subset counting as a whiff.
var (
	swingCodes = map[string]bool{"X": true, "F": true, "S": true, "D": true, "E": true, "T": true, "W": true}
	whiffCodes = map[string]bool{"S": true, "T": true, "W": true}
)

func mapSchedule(payload scheduleResponse, loc *time.Location) games.Table {
	table := make(games.Table, 0, payload.TotalGames)
	for _, date := range payload.Dates {
		for _, g := range date.Games {
			table = append(table, mapScheduleGame(g, loc))
		}
	}
	return table
}

func mapScheduleGame(g scheduleGame, loc *time.Location) games.Game {
	row := games.Game{
		GameID:    g.GamePk,
		Date:      g.OfficialDate,
		Away:      g.Teams.Away.Team.Name,
		Home:      g.Teams.Home.Team.Name,
		State:     games.GameState(g.Status.CodedGameState),
		VenueID:   g.Venue.ID,
		VenueName: g.Venue.Name,
	}

	if t, err := time.Parse(time.RFC3339, g.GameDate); err == nil {
		row.StartTime = t.UTC()
		if !g.Status.StartTimeTBD {
			row.StartET = timeutil.FormatClock(t, loc)
		}
		if row.Date == "" {
			row.Date = timeutil.FormatDate(t.In(loc))
		}
	}
	return row
}

func mapFeed(feed feedResponse) plays.Table {
	table := make(plays.Table, 0)
	for i := range feed.LiveData.Plays.AllPlays {
		table = append(table, extractPlay(&feed.LiveData.Plays.AllPlays[i], &feed)...)
	}
	return table
}

// extractPlay flattens one at-bat into rows: every pitch or called event
// becomes a row, and a walk completing on a non-pitch event (ball four
// awarded without a pitch call) is synthesized into one.
func extractPlay(play *feedPlay, feed *feedResponse) plays.Table {
	rows := make(plays.Table, 0, len(play.PlayEvents))
	last := len(play.PlayEvents) - 1

	for n := range play.PlayEvents {
		event := &play.PlayEvents[n]

		var row plays.Event
		switch {
		case event.IsPitch || event.Details.Call != nil:
			row = extractEvent(play, event, n, last, feed)
		case event.Count.Balls != nil && *event.Count.Balls == 4:
			row = extractWalk(play, event, feed)
		default:
			continue
		}

		row.GameID = feed.GamePk
		row.GameDate = feed.GameData.Datetime.OfficialDate
		rows = append(rows, row)
	}
	return rows
}

func extractEvent(play *feedPlay, event *feedPlayEvent, n, last int, feed *feedResponse) plays.Event {
	details := event.Details

	row := plays.Event{
		PlayDescription: details.Description,
		PlayCode:        details.Code,
		InPlay:          details.IsInPlay,
		IsStrike:        details.IsStrike,
		IsBall:          details.IsBall,
		HasReview:       details.HasReview,
		IndexInPlay:     event.Index,
		PlayID:          event.PlayID,
		StartTime:       event.StartTime,
		EndTime:         event.EndTime,
		IsPitch:         boolPtr(event.IsPitch),
		Type:            event.Type,
	}

	if details.Code != nil {
		row.IsSwing = boolPtr(swingCodes[*details.Code])
		row.IsWhiff = boolPtr(whiffCodes[*details.Code])
	}
	if details.Type != nil {
		row.PitchType = details.Type.Code
		row.PitchDescription = details.Type.Description
	}

	applyMatchup(&row, play)
	applyTeams(&row, play, feed)
	applyCounts(&row, play, event, n)
	applyPitchData(&row, event.PitchData)
	applyHitData(&row, event.HitData)
	if n == last {
		applyResult(&row, play)
	}
	return row
}

// extractWalk synthesizes a row for a walk that completes without a pitch
// call. Matchup, count and result columns are carried; every pitch, hit and
// call column stays nil.
func extractWalk(play *feedPlay, event *feedPlayEvent, feed *feedResponse) plays.Event {
	row := plays.Event{
		IndexInPlay: event.Index,
		PlayID:      event.PlayID,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		IsPitch:     boolPtr(event.IsPitch),
		Type:        event.Type,
		Event:       play.Result.Event,
		EventType:   play.Result.EventType,
	}

	applyMatchup(&row, play)
	applyTeams(&row, play, feed)
	row.Balls = event.Count.Balls
	row.Strikes = event.Count.Strikes
	row.Outs = event.Count.Outs
	row.BallsAfter = event.Count.Balls
	row.StrikesAfter = event.Count.Strikes
	row.OutsAfter = event.Count.Outs
	return row
}

func applyMatchup(row *plays.Event, play *feedPlay) {
	row.BatterID = play.Matchup.Batter.ID
	row.BatterName = play.Matchup.Batter.FullName
	row.BatterHand = play.Matchup.BatSide.Code
	row.PitcherID = play.Matchup.Pitcher.ID
	row.PitcherName = play.Matchup.Pitcher.FullName
	row.PitcherHand = play.Matchup.PitchHand.Code
}

// applyTeams resolves the batting and pitching sides from the feed's team
// block by inning half.
func applyTeams(row *plays.Event, play *feedPlay, feed *feedResponse) {
	batting, pitching := feed.GameData.Teams.Home, feed.GameData.Teams.Away
	if play.About.IsTopInning {
		batting, pitching = feed.GameData.Teams.Away, feed.GameData.Teams.Home
	}
	row.BattingTeam = batting.Abbreviation
	row.BattingTeamID = batting.ID
	row.PitchingTeam = pitching.Abbreviation
	row.PitchingTeamID = pitching.ID
}

// applyCounts fills the before/after count columns. The count on an event is
// the state after it; the state before is taken from the previous event, or
// a fresh count (with the current outs) for the first event of an at-bat.
func applyCounts(row *plays.Event, play *feedPlay, event *feedPlayEvent, n int) {
	if n == 0 {
		row.Balls = intPtr(0)
		row.Strikes = intPtr(0)
		row.Outs = event.Count.Outs
	} else {
		prev := play.PlayEvents[n-1].Count
		row.Balls = prev.Balls
		row.Strikes = prev.Strikes
		row.Outs = prev.Outs
	}
	row.BallsAfter = event.Count.Balls
	row.StrikesAfter = event.Count.Strikes
	row.OutsAfter = event.Count.Outs
}

func applyPitchData(row *plays.Event, pd *feedPitchData) {
	if pd == nil {
		return
	}
	row.StartSpeed = pd.StartSpeed
	row.EndSpeed = pd.EndSpeed
	row.StrikeZoneTop = pd.StrikeZoneTop
	row.StrikeZoneBottom = pd.StrikeZoneBottom
	row.X = pd.Coordinates.X
	row.Y = pd.Coordinates.Y
	row.AX = pd.Coordinates.AX
	row.AY = pd.Coordinates.AY
	row.AZ = pd.Coordinates.AZ
	row.PfxX = pd.Coordinates.PfxX
	row.PfxZ = pd.Coordinates.PfxZ
	row.PX = pd.Coordinates.PX
	row.PZ = pd.Coordinates.PZ
	row.VX0 = pd.Coordinates.VX0
	row.VY0 = pd.Coordinates.VY0
	row.VZ0 = pd.Coordinates.VZ0
	row.X0 = pd.Coordinates.X0
	row.Y0 = pd.Coordinates.Y0
	row.Z0 = pd.Coordinates.Z0
	row.Zone = pd.Zone
	row.TypeConfidence = pd.TypeConfidence
	row.PlateTime = pd.PlateTime
	row.Extension = pd.Extension
	row.SpinRate = pd.Breaks.SpinRate
	row.SpinDirection = pd.Breaks.SpinDirection
	row.BreakVertical = pd.Breaks.BreakVertical
	row.BreakInduced = pd.Breaks.BreakVerticalInduced
	row.BreakHorizontal = pd.Breaks.BreakHorizontal
}

func applyHitData(row *plays.Event, hd *feedHitData) {
	if hd == nil {
		return
	}
	row.LaunchSpeed = hd.LaunchSpeed
	row.LaunchAngle = hd.LaunchAngle
	row.LaunchDistance = hd.TotalDistance
	row.LaunchLocation = hd.Location
	row.Trajectory = hd.Trajectory
	row.Hardness = hd.Hardness
	row.HitX = hd.Coordinates.CoordX
	row.HitY = hd.Coordinates.CoordY
}

func applyResult(row *plays.Event, play *feedPlay) {
	row.AtBatType = play.Result.Type
	row.Event = play.Result.Event
	row.EventType = play.Result.EventType
	row.RBI = play.Result.RBI
	row.AwayScore = play.Result.AwayScore
	row.HomeScore = play.Result.HomeScore
	row.IsOut = play.Result.IsOut
}

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}
