package domain

import "fmt"

// TeamStats aggregates one team's counters for a single game.
type TeamStats struct {
	Goals                  int
	Shots                  int
	Blocked                int
	Hits                   int
	Giveaways              int
	Takeaways              int
	FaceoffWinPct          float64
	PowerPlayGoals         int
	PowerPlayOpportunities int
	PowerPlayPct           float64
	Periods                []Period
	Shootout               *Shootout
}

// PowerPlayFraction renders the power-play line as "goals/opportunities".
func (s TeamStats) PowerPlayFraction() string {
	return fmt.Sprintf("%d/%d", s.PowerPlayGoals, s.PowerPlayOpportunities)
}

// Period holds one team's goals and shots for a single period.
type Period struct {
	Number int
	Label  string
	Goals  int
	Shots  int
}

// Shootout holds one team's shootout line. Played is false until the
// linescore reports a shootout happened.
type Shootout struct {
	Scores   int
	Attempts int
	Played   bool
}

// Goal is one scoring play, chronological as delivered by the feed.
type Goal struct {
	Period      string
	Time        string
	Team        Team
	Strength    string
	Goalie      string
	Description string
}

// Penalty is one penalty play, chronological as delivered by the feed.
type Penalty struct {
	Period      string
	Time        string
	Team        Team
	Severity    string
	Minutes     int
	Description string
}
