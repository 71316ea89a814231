package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ClockDefault is the inert game clock shown before the feed reports one.
const ClockDefault = "--"

// PeriodDefault is the inert current-period label for games without detail data.
const PeriodDefault = "0"

// GameType classifies a game by the type digit embedded in its ID.
type GameType int

const (
	GameTypePreseason GameType = iota + 1
	GameTypeRegular
	GameTypePostseason
	GameTypeAllStar
)

func (t GameType) String() string {
	switch t {
	case GameTypePreseason:
		return "PRESEASON"
	case GameTypeRegular:
		return "REGULAR"
	case GameTypePostseason:
		return "POSTSEASON"
	case GameTypeAllStar:
		return "ALLSTAR"
	}
	return fmt.Sprintf("GameType(%d)", int(t))
}

// ParseGameType maps a config-facing name to a GameType.
func ParseGameType(name string) (GameType, error) {
	switch name {
	case "PRESEASON":
		return GameTypePreseason, nil
	case "REGULAR":
		return GameTypeRegular, nil
	case "POSTSEASON":
		return GameTypePostseason, nil
	case "ALLSTAR":
		return GameTypeAllStar, nil
	}
	return 0, fmt.Errorf("unknown game type %q", name)
}

// GameInfo carries the live state of a game: the current period label and the
// game clock, or a status string such as "Final" once the game ends.
type GameInfo struct {
	CurrentPeriod string
	Clock         string
}

// Started reports whether the feed has begun publishing clock data.
func (i GameInfo) Started() bool {
	return i.Clock != ClockDefault && i.Clock != ""
}

// Game is one scheduled or live NHL game. Schedule-only games carry identity
// fields plus defaults; games merged with live-feed detail also carry stats,
// goals and penalties.
type Game struct {
	ID        int64
	AwayTeam  Team
	HomeTeam  Team
	StartTime time.Time
	EndTime   *time.Time
	Info      GameInfo
	AwayStats *TeamStats
	HomeStats *TeamStats
	Goals     []Goal
	Penalties []Penalty
}

// Type derives the game's type from the sixth digit of its ten-digit ID
// (2022020158 -> REGULAR). An ID of the wrong length or with an unknown type
// digit is an error for this game only.
func (g Game) Type() (GameType, error) {
	id := strconv.FormatInt(g.ID, 10)
	if len(id) != 10 {
		return 0, fmt.Errorf("game id %d: want 10 digits, got %d", g.ID, len(id))
	}
	switch id[5] {
	case '1':
		return GameTypePreseason, nil
	case '2':
		return GameTypeRegular, nil
	case '3':
		return GameTypePostseason, nil
	case '4':
		return GameTypeAllStar, nil
	}
	return 0, fmt.Errorf("game id %d: unknown type digit %q", g.ID, id[5])
}
