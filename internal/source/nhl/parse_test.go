package nhl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdtbot/internal/domain"
)

func decode(t *testing.T, payload string) any {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

const scheduledGameJSON = `{
	"gamePk": 2022020158,
	"gameDate": "2023-11-10T00:00:00Z",
	"teams": {
		"away": {"team": {"id": 6, "name": "Boston Bruins"}},
		"home": {"team": {"id": 10, "name": "Toronto Maple Leafs"}}
	}
}`

func TestParseScheduledGame(t *testing.T) {
	game := parseScheduledGame(decode(t, scheduledGameJSON))
	require.NotNil(t, game)

	assert.Equal(t, int64(2022020158), game.ID)
	assert.Equal(t, "BOS", game.AwayTeam.Abbreviation)
	assert.Equal(t, "TOR", game.HomeTeam.Abbreviation)
	assert.Equal(t, "2023-11-10T00:00:00Z", game.StartTime.Format("2006-01-02T15:04:05Z07:00"))
	assert.Nil(t, game.EndTime)
	assert.Nil(t, game.AwayStats)
	assert.Equal(t, domain.ClockDefault, game.Info.Clock)
	assert.Equal(t, domain.PeriodDefault, game.Info.CurrentPeriod)
}

func TestParseScheduledGameMissingIdentity(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing id", `{"gameDate": "2023-11-10T00:00:00Z", "teams": {"away": {"team": {"id": 6}}, "home": {"team": {"id": 10}}}}`},
		{"missing away team", `{"gamePk": 2022020158, "gameDate": "2023-11-10T00:00:00Z", "teams": {"home": {"team": {"id": 10}}}}`},
		{"missing start time", `{"gamePk": 2022020158, "teams": {"away": {"team": {"id": 6}}, "home": {"team": {"id": 10}}}}`},
		{"unknown team id", `{"gamePk": 2022020158, "gameDate": "2023-11-10T00:00:00Z", "teams": {"away": {"team": {"id": 999}}, "home": {"team": {"id": 10}}}}`},
		{"unparseable start time", `{"gamePk": 2022020158, "gameDate": "tonight", "teams": {"away": {"team": {"id": 6}}, "home": {"team": {"id": 10}}}}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, parseScheduledGame(decode(t, tt.payload)))
		})
	}
}

const liveFeedJSON = `{
	"gameData": {
		"game": {"pk": 2022020158},
		"teams": {
			"away": {"abbreviation": "BOS"},
			"home": {"abbreviation": "TOR"}
		},
		"datetime": {
			"dateTime": "2023-11-10T00:00:00Z",
			"endDateTime": "2023-11-10T02:45:00Z"
		}
	},
	"liveData": {
		"linescore": {
			"currentPeriodOrdinal": "3rd",
			"currentPeriodTimeRemaining": "Final",
			"hasShootout": false,
			"teams": {
				"away": {"goals": 2},
				"home": {"goals": 1}
			},
			"periods": [
				{"num": 1, "ordinalNum": "1st", "away": {"goals": 1, "shotsOnGoal": 8}, "home": {"goals": 0, "shotsOnGoal": 4}},
				{"num": 2, "ordinalNum": "2nd", "away": {"goals": 1, "shotsOnGoal": 7}, "home": {"goals": 1, "shotsOnGoal": 6}},
				{"num": 3, "ordinalNum": "3rd", "away": {"goals": 0, "shotsOnGoal": 5}, "home": {"goals": 0, "shotsOnGoal": 9}}
			],
			"shootoutInfo": {
				"away": {"scores": 0, "attempts": 0},
				"home": {"scores": 0, "attempts": 0}
			}
		},
		"boxscore": {
			"teams": {
				"away": {"teamStats": {"teamSkaterStats": {
					"shots": 20, "blocked": 5, "hits": 12, "giveaways": 3, "takeaways": 4,
					"faceOffWinPercentage": "52.4",
					"powerPlayGoals": 1, "powerPlayOpportunities": 3, "powerPlayPercentage": "33.3"
				}}},
				"home": {"teamStats": {"teamSkaterStats": {
					"shots": 19, "blocked": 7, "hits": 9, "giveaways": 5, "takeaways": 2,
					"faceOffWinPercentage": {"default": 47.6},
					"powerPlayGoals": 0, "powerPlayOpportunities": 2, "powerPlayPercentage": 0.0
				}}}
			}
		},
		"plays": {
			"scoringPlays": [0, 2, 99],
			"penaltyPlays": [1],
			"allPlays": [
				{
					"about": {"ordinalNum": "1st", "periodTime": "05:31"},
					"team": {"triCode": "BOS"},
					"result": {"strength": {"name": "Even"}, "description": "Goal A"},
					"players": [
						{"playerType": "Scorer", "player": {"fullName": "David Pastrnak"}},
						{"playerType": "Goalie", "player": {"fullName": "Joseph Woll"}}
					]
				},
				{
					"about": {"ordinalNum": "1st", "periodTime": "08:00"},
					"team": {"triCode": "TOR"},
					"result": {"penaltySeverity": "Minor", "penaltyMinutes": 2, "description": "Tripping"}
				},
				{
					"about": {"ordinalNum": "3rd", "periodTime": "19:02"},
					"team": {"triCode": "BOS"},
					"result": {"strength": {"name": "Even"}, "description": "Empty net goal"},
					"players": [
						{"playerType": "Scorer", "player": {"fullName": "Brad Marchand"}}
					]
				}
			]
		}
	}
}`

func TestParseLiveFeed(t *testing.T) {
	game := parseLiveFeed(decode(t, liveFeedJSON))
	require.NotNil(t, game)

	assert.Equal(t, int64(2022020158), game.ID)
	assert.Equal(t, "BOS", game.AwayTeam.Abbreviation)
	assert.Equal(t, "TOR", game.HomeTeam.Abbreviation)
	require.NotNil(t, game.EndTime)
	assert.Equal(t, "3rd", game.Info.CurrentPeriod)
	assert.Equal(t, "Final", game.Info.Clock)

	require.NotNil(t, game.AwayStats)
	require.NotNil(t, game.HomeStats)
	assert.Equal(t, 2, game.AwayStats.Goals)
	assert.Equal(t, 20, game.AwayStats.Shots)
	assert.InDelta(t, 52.4, game.AwayStats.FaceoffWinPct, 0.001, "string percentage coerced")
	assert.InDelta(t, 47.6, game.HomeStats.FaceoffWinPct, 0.001, "localized object percentage coerced")
	assert.Equal(t, "1/3", game.AwayStats.PowerPlayFraction())
	assert.Len(t, game.AwayStats.Periods, 3)
	assert.Equal(t, "2nd", game.AwayStats.Periods[1].Label)
	assert.Equal(t, 7, game.AwayStats.Periods[1].Shots)
	require.NotNil(t, game.AwayStats.Shootout)
	assert.False(t, game.AwayStats.Shootout.Played)

	// Play 99 does not exist in allPlays and is skipped; the rest parse.
	require.Len(t, game.Goals, 2)
	assert.Equal(t, "Woll", game.Goals[0].Goalie, "goalie is the tagged goaltender's last name")
	assert.Equal(t, "Empty Net", game.Goals[1].Goalie, "no tagged goaltender falls back to the sentinel")
	assert.Equal(t, "BOS", game.Goals[0].Team.Abbreviation)

	require.Len(t, game.Penalties, 1)
	assert.Equal(t, "Minor", game.Penalties[0].Severity)
	assert.Equal(t, 2, game.Penalties[0].Minutes)
}

func TestParseGoalsBlankGoalieName(t *testing.T) {
	payload := `{
		"gameData": {
			"game": {"pk": 2022020158},
			"teams": {"away": {"abbreviation": "BOS"}, "home": {"abbreviation": "TOR"}},
			"datetime": {"dateTime": "2023-11-10T00:00:00Z"}
		},
		"liveData": {
			"plays": {
				"scoringPlays": [0],
				"allPlays": [
					{
						"about": {"ordinalNum": "1st", "periodTime": "05:31"},
						"team": {"triCode": "BOS"},
						"result": {"strength": {"name": "Even"}, "description": "Goal A"},
						"players": [
							{"playerType": "Goalie", "player": {"fullName": "  "}}
						]
					}
				]
			}
		}
	}`

	// A goaltender entry whose name is all whitespace has no last name to
	// take; the sentinel stands in instead of a panic.
	game := parseLiveFeed(decode(t, payload))
	require.NotNil(t, game)
	require.Len(t, game.Goals, 1)
	assert.Equal(t, "Empty Net", game.Goals[0].Goalie)
}

func TestParseLiveFeedIdempotent(t *testing.T) {
	raw := decode(t, liveFeedJSON)
	first := parseLiveFeed(raw)
	second := parseLiveFeed(raw)
	assert.Equal(t, first, second)
}

func TestParseLiveFeedMissingIdentity(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty payload", `{}`},
		{"missing id", `{"gameData": {"teams": {"away": {"abbreviation": "BOS"}, "home": {"abbreviation": "TOR"}}, "datetime": {"dateTime": "2023-11-10T00:00:00Z"}}}`},
		{"unknown abbreviation", `{"gameData": {"game": {"pk": 2022020158}, "teams": {"away": {"abbreviation": "XXX"}, "home": {"abbreviation": "TOR"}}, "datetime": {"dateTime": "2023-11-10T00:00:00Z"}}}`},
		{"missing start", `{"gameData": {"game": {"pk": 2022020158}, "teams": {"away": {"abbreviation": "BOS"}, "home": {"abbreviation": "TOR"}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, parseLiveFeed(decode(t, tt.payload)))
		})
	}
}

func TestParseLiveFeedWithoutDetailSections(t *testing.T) {
	payload := `{
		"gameData": {
			"game": {"pk": 2022020158},
			"teams": {"away": {"abbreviation": "BOS"}, "home": {"abbreviation": "TOR"}},
			"datetime": {"dateTime": "2023-11-10T00:00:00Z"}
		}
	}`
	game := parseLiveFeed(decode(t, payload))
	require.NotNil(t, game)

	assert.Nil(t, game.AwayStats)
	assert.Nil(t, game.HomeStats)
	assert.Empty(t, game.Goals)
	assert.Empty(t, game.Penalties)
	assert.Equal(t, domain.ClockDefault, game.Info.Clock)
}

func TestGetOrDefaultTraversal(t *testing.T) {
	raw := decode(t, `{"a": {"b": [10, {"c": "x"}]}, "n": null}`)

	assert.Equal(t, "x", getString(raw, "def", "a", "b", 1, "c"))
	assert.Equal(t, "def", getString(raw, "def", "a", "missing"))
	assert.Equal(t, "def", getString(raw, "def", "a", "b", 5))
	assert.Equal(t, "def", getString(raw, "def", "n"), "explicit null yields the default")
	assert.Equal(t, 10, getInt(raw, -1, "a", "b", 0))
	assert.Equal(t, -1, getInt(raw, -1, "a", "b", 1, "c"), "non-numeric string yields the default")
}
