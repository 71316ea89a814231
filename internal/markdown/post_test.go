package markdown

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"gdtbot/internal/domain"
)

func testGame() domain.Game {
	boston := domain.TeamByAbbreviation("BOS")
	toronto := domain.TeamByAbbreviation("TOR")
	return domain.Game{
		ID:        2022020158,
		AwayTeam:  boston,
		HomeTeam:  toronto,
		StartTime: time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
		Info:      domain.GameInfo{CurrentPeriod: "2nd", Clock: "14:02"},
		AwayStats: &domain.TeamStats{
			Goals: 2, Shots: 15, Blocked: 5, Hits: 12, Giveaways: 3, Takeaways: 4,
			FaceoffWinPct: 52.4, PowerPlayGoals: 1, PowerPlayOpportunities: 3,
			Periods: []domain.Period{
				{Number: 1, Label: "1st", Goals: 1, Shots: 8},
				{Number: 2, Label: "2nd", Goals: 1, Shots: 7},
			},
		},
		HomeStats: &domain.TeamStats{
			Goals: 1, Shots: 10, Blocked: 7, Hits: 9, Giveaways: 5, Takeaways: 2,
			FaceoffWinPct: 47.6, PowerPlayGoals: 0, PowerPlayOpportunities: 2,
			Periods: []domain.Period{
				{Number: 1, Label: "1st", Goals: 0, Shots: 4},
				{Number: 2, Label: "2nd", Goals: 1, Shots: 6},
			},
		},
		Goals: []domain.Goal{
			{Period: "1st", Time: "05:31", Team: boston, Strength: "Even", Goalie: "Woll", Description: "Goal A"},
			{Period: "2nd", Time: "10:02", Team: toronto, Strength: "Power Play", Goalie: "Swayman", Description: "Goal B"},
		},
		Penalties: []domain.Penalty{
			{Period: "1st", Time: "08:00", Team: toronto, Severity: "Minor", Minutes: 2, Description: "Tripping"},
		},
	}
}

func TestThreadTitle(t *testing.T) {
	assert.Equal(t,
		"[GDT] Boston Bruins at Toronto Maple Leafs - 07:00PM EST",
		ThreadTitle(testGame()))
}

func TestThreadBody(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "thread_body", []byte(ThreadBody(testGame())))
}

func TestThreadBodySkeletonGame(t *testing.T) {
	game := testGame()
	game.AwayStats = nil
	game.HomeStats = nil
	game.Info = domain.GameInfo{CurrentPeriod: domain.PeriodDefault, Clock: domain.ClockDefault}

	body := ThreadBody(game)
	assert.Contains(t, body, "Time Clock")
	assert.Contains(t, body, "#### Start Times")
	assert.NotContains(t, body, "Power Plays", "stats tables are omitted without detail data")
}

func TestDailyTitle(t *testing.T) {
	assert.Equal(t,
		"[Daily Discussion Thread] All game details and discussion for games on Friday, November 10, 2023",
		DailyTitle("2023-11-10"))
}

func TestDailyBody(t *testing.T) {
	upcoming := domain.Game{
		AwayTeam:  domain.TeamByAbbreviation("TOR"),
		HomeTeam:  domain.TeamByAbbreviation("BOS"),
		StartTime: time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
		Info:      domain.GameInfo{CurrentPeriod: domain.PeriodDefault, Clock: domain.ClockDefault},
	}
	finished := domain.Game{
		AwayTeam:  domain.TeamByAbbreviation("MTL"),
		HomeTeam:  domain.TeamByAbbreviation("OTT"),
		StartTime: time.Date(2023, 11, 9, 23, 0, 0, 0, time.UTC),
		Info:      domain.GameInfo{CurrentPeriod: "3rd", Clock: "Final"},
		AwayStats: &domain.TeamStats{Goals: 2},
		HomeStats: &domain.TeamStats{Goals: 3},
	}

	body := DailyBody([]DayGame{
		{Game: upcoming},
		{Game: finished, Link: "https://example.com/post/42"},
	})

	g := goldie.New(t)
	g.Assert(t, "daily_body", []byte(body))
}

func TestFormattedClock(t *testing.T) {
	assert.Equal(t, "2nd - 14:02", formattedClock(domain.GameInfo{CurrentPeriod: "2nd", Clock: "14:02"}))
	assert.Equal(t, "Final", formattedClock(domain.GameInfo{CurrentPeriod: "3rd", Clock: "Final"}))
	assert.Equal(t, "Final - OT", formattedClock(domain.GameInfo{CurrentPeriod: "OT", Clock: "Final"}))
	assert.Equal(t, domain.ClockDefault, formattedClock(domain.GameInfo{CurrentPeriod: domain.PeriodDefault, Clock: domain.ClockDefault}))
}
