package nhl

import (
	"strings"
	"time"

	"gdtbot/internal/domain"
)

// emptyNet is recorded as the goalie when a scoring play has no goaltender
// in its player list.
const emptyNet = "Empty Net"

// parseScheduledGame turns one schedule entry into a skeleton Game. It
// returns nil when an identity field (game id, both teams, start time) is
// missing or references a team outside the catalog; callers skip that record
// and continue.
func parseScheduledGame(raw any) *domain.Game {
	id, okID := getInt64(raw, "gamePk")
	awayID, okAway := getInt64(raw, "teams", "away", "team", "id")
	homeID, okHome := getInt64(raw, "teams", "home", "team", "id")
	startRaw := getString(raw, "", "gameDate")
	if !okID || !okAway || !okHome || startRaw == "" {
		return nil
	}

	away, okAway := domain.TeamByID(int(awayID))
	home, okHome := domain.TeamByID(int(homeID))
	if !okAway || !okHome {
		return nil
	}

	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return nil
	}

	return &domain.Game{
		ID:        id,
		AwayTeam:  away,
		HomeTeam:  home,
		StartTime: start,
		Info: domain.GameInfo{
			CurrentPeriod: domain.PeriodDefault,
			Clock:         domain.ClockDefault,
		},
	}
}

// parseLiveFeed turns a live feed payload into a detailed Game, with the same
// nil-on-missing-identity contract as parseScheduledGame. Stats, goals and
// penalties degrade to absent or inert defaults rather than failing the game.
func parseLiveFeed(raw any) *domain.Game {
	id, okID := getInt64(raw, "gameData", "game", "pk")
	awayAbbr := getString(raw, "", "gameData", "teams", "away", "abbreviation")
	homeAbbr := getString(raw, "", "gameData", "teams", "home", "abbreviation")
	startRaw := getString(raw, "", "gameData", "datetime", "dateTime")
	if !okID || awayAbbr == "" || homeAbbr == "" || startRaw == "" {
		return nil
	}

	away := domain.TeamByAbbreviation(awayAbbr)
	home := domain.TeamByAbbreviation(homeAbbr)
	if away.IsUnknown() || home.IsUnknown() {
		return nil
	}

	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return nil
	}

	var end *time.Time
	if endRaw := getString(raw, "", "gameData", "datetime", "endDateTime"); endRaw != "" {
		if parsed, err := time.Parse(time.RFC3339, endRaw); err == nil {
			end = &parsed
		}
	}

	return &domain.Game{
		ID:        id,
		AwayTeam:  away,
		HomeTeam:  home,
		StartTime: start,
		EndTime:   end,
		Info:      parseGameInfo(raw),
		AwayStats: parseTeamStats(raw, "away"),
		HomeStats: parseTeamStats(raw, "home"),
		Goals:     parseGoals(raw),
		Penalties: parsePenalties(raw),
	}
}

func parseGameInfo(raw any) domain.GameInfo {
	return domain.GameInfo{
		CurrentPeriod: getString(raw, domain.PeriodDefault, "liveData", "linescore", "currentPeriodOrdinal"),
		Clock:         getString(raw, domain.ClockDefault, "liveData", "linescore", "currentPeriodTimeRemaining"),
	}
}

// parseTeamStats extracts one side's stat line. It returns nil when the
// boxscore has no entry for the side, which is normal before detail data
// exists.
func parseTeamStats(raw any, side string) *domain.TeamStats {
	team, ok := get(raw, "liveData", "boxscore", "teams", side)
	if !ok {
		return nil
	}
	skater, _ := get(team, "teamStats", "teamSkaterStats")

	return &domain.TeamStats{
		Goals:                  getInt(raw, 0, "liveData", "linescore", "teams", side, "goals"),
		Shots:                  getInt(skater, 0, "shots"),
		Blocked:                getInt(skater, 0, "blocked"),
		Hits:                   getInt(skater, 0, "hits"),
		Giveaways:              getInt(skater, 0, "giveaways"),
		Takeaways:              getInt(skater, 0, "takeaways"),
		FaceoffWinPct:          getFloat(skater, 0, "faceOffWinPercentage"),
		PowerPlayGoals:         getInt(skater, 0, "powerPlayGoals"),
		PowerPlayOpportunities: getInt(skater, 0, "powerPlayOpportunities"),
		PowerPlayPct:           getFloat(skater, 0, "powerPlayPercentage"),
		Periods:                parsePeriods(raw, side),
		Shootout:               parseShootout(raw, side),
	}
}

func parsePeriods(raw any, side string) []domain.Period {
	var out []domain.Period
	for _, period := range getSlice(raw, "liveData", "linescore", "periods") {
		out = append(out, domain.Period{
			Number: getInt(period, 0, "num"),
			Label:  getString(period, "", "ordinalNum"),
			Goals:  getInt(period, 0, side, "goals"),
			Shots:  getInt(period, 0, side, "shotsOnGoal"),
		})
	}
	return out
}

func parseShootout(raw any, side string) *domain.Shootout {
	info, ok := get(raw, "liveData", "linescore", "shootoutInfo", side)
	if !ok {
		return nil
	}
	return &domain.Shootout{
		Scores:   getInt(info, 0, "scores"),
		Attempts: getInt(info, 0, "attempts"),
		Played:   getBool(raw, false, "liveData", "linescore", "hasShootout"),
	}
}

// parseGoals resolves each scoring-play reference against the all-plays
// collection. A reference with no matching play is skipped; a play without a
// tagged goaltender gets the empty-net sentinel.
func parseGoals(raw any) []domain.Goal {
	var out []domain.Goal
	for _, ref := range getSlice(raw, "liveData", "plays", "scoringPlays") {
		idx, ok := asFloat(ref)
		if !ok {
			continue
		}
		play, ok := get(raw, "liveData", "plays", "allPlays", int(idx))
		if !ok {
			continue
		}
		goalie := emptyNet
		for _, player := range getSlice(play, "players") {
			if getString(player, "", "playerType") != "Goalie" {
				continue
			}
			// A whitespace-only name splits to nothing; keep the sentinel.
			if fields := strings.Fields(getString(player, "", "player", "fullName")); len(fields) > 0 {
				goalie = fields[len(fields)-1]
			}
		}
		out = append(out, domain.Goal{
			Period:      getString(play, "", "about", "ordinalNum"),
			Time:        getString(play, "", "about", "periodTime"),
			Team:        domain.TeamByAbbreviation(getString(play, "", "team", "triCode")),
			Strength:    getString(play, "", "result", "strength", "name"),
			Goalie:      goalie,
			Description: getString(play, "", "result", "description"),
		})
	}
	return out
}

func parsePenalties(raw any) []domain.Penalty {
	var out []domain.Penalty
	for _, ref := range getSlice(raw, "liveData", "plays", "penaltyPlays") {
		idx, ok := asFloat(ref)
		if !ok {
			continue
		}
		play, ok := get(raw, "liveData", "plays", "allPlays", int(idx))
		if !ok {
			continue
		}
		out = append(out, domain.Penalty{
			Period:      getString(play, "", "about", "ordinalNum"),
			Time:        getString(play, "", "about", "periodTime"),
			Team:        domain.TeamByAbbreviation(getString(play, "", "team", "triCode")),
			Severity:    getString(play, "", "result", "penaltySeverity"),
			Minutes:     getInt(play, 0, "result", "penaltyMinutes"),
			Description: getString(play, "", "result", "description"),
		})
	}
	return out
}
