package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gdtbot/internal/domain"
)

const (
	lineBreak  = "&nbsp;"
	footerText = "I am an open source bot! Report issues and contribute on my source repository."

	startTimeFormat     = "03:04PM MST"
	startTimeFormatNoTZ = "03:04PM"
	dayTitleFormat      = "Monday, January 2, 2006"

	finalClock            = "Final"
	regulationFinalPeriod = "3rd"
)

var (
	teamStatsHeader      = []string{"Team", "Shots", "Hits", "Blocked", "FO Wins", "Giveaways", "Takeaways", "Power Plays"}
	goalDetailsHeader    = []string{"Period", "Time", "Team", "Strength", "Goalie", "Description"}
	penaltyDetailsHeader = []string{"Period", "Time", "Team", "Type", "Min", "Description"}
	startTimesHeader     = []string{"PT", "MT", "CT", "ET", "AT"}
	dayOverviewHeader    = []string{"Match up", "Time", "Link"}
)

// ThreadTitle is the game-day thread title.
func ThreadTitle(g domain.Game) string {
	return fmt.Sprintf("[GDT] %s %s at %s %s - %s",
		g.AwayTeam.City, g.AwayTeam.Name,
		g.HomeTeam.City, g.HomeTeam.Name,
		formatStartTime(g.StartTime))
}

// ThreadBody is the full game-day thread body.
func ThreadBody(g domain.Game) string {
	return joinSections(gameDetails(g), footerText) + "\n"
}

// CommentBody is the body of a game's comment under the daily thread.
func CommentBody(g domain.Game) string {
	return joinSections(gameDetails(g), footerText)
}

// DailyTitle is the daily discussion thread title for a reference-zone day.
func DailyTitle(day string) string {
	formatted := day
	if d, err := time.Parse("2006-01-02", day); err == nil {
		formatted = d.Format(dayTitleFormat)
	}
	return fmt.Sprintf("[Daily Discussion Thread] All game details and discussion for games on %s", formatted)
}

// DayGame pairs a game with the link to its thread or comment, if one has
// been created yet.
type DayGame struct {
	Game domain.Game
	Link string
}

// DailyBody is the daily discussion thread body: a score overview of the
// day's games.
func DailyBody(games []DayGame) string {
	return joinSections(dayOverviewTable(games).Render(), footerText)
}

func gameDetails(g domain.Game) string {
	sections := []string{timeClockTable(g.Info).Render()}
	if g.AwayStats != nil && g.HomeStats != nil {
		sections = append(sections,
			periodsTable(g).Render(),
			teamStatsTable(g).Render(),
			goalDetailsTable(g).Render(),
			penaltyDetailsTable(g).Render(),
		)
	}
	sections = append(sections, "#### Start Times\n\n"+startTimesTable(g.StartTime).Render())
	return joinSections(sections...)
}

// joinSections joins non-empty sections with a blank spacer line between
// them. Empty sections (an unset table) disappear entirely.
func joinSections(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n"+lineBreak+"\n\n")
}

func timeClockTable(info domain.GameInfo) *Table {
	t := NewTable()
	t.Set(0, 0, "Time Clock")
	t.Set(0, 1, formattedClock(info))
	return t
}

// formattedClock renders the live state: "2nd - 14:02" mid-game, "Final" for
// a regulation finish, "Final - OT" beyond regulation.
func formattedClock(info domain.GameInfo) string {
	isFinal := strings.EqualFold(info.Clock, finalClock)
	out := ""
	if !isFinal && info.Started() {
		out = info.CurrentPeriod + " - "
	}
	out += info.Clock
	if isFinal && info.CurrentPeriod != regulationFinalPeriod {
		out += " - " + info.CurrentPeriod
	}
	return out
}

func periodsTable(g domain.Game) *Table {
	t := NewTable()
	t.Set(0, 0, "Team")
	t.Set(0, 1, g.AwayTeam.TableEntry())
	t.Set(0, 2, g.HomeTeam.TableEntry())
	for _, p := range g.AwayStats.Periods {
		t.Set(p.Number, 0, p.Label)
		t.Set(p.Number, 1, strconv.Itoa(p.Goals))
	}
	for _, p := range g.HomeStats.Periods {
		t.Set(p.Number, 2, strconv.Itoa(p.Goals))
	}
	if g.AwayStats.Shootout != nil && g.HomeStats.Shootout != nil && g.AwayStats.Shootout.Played {
		col := t.MaxCol() + 1
		t.Set(col, 0, "SO")
		t.Set(col, 1, fmt.Sprintf("%d/%d", g.AwayStats.Shootout.Scores, g.AwayStats.Shootout.Attempts))
		t.Set(col, 2, fmt.Sprintf("%d/%d", g.HomeStats.Shootout.Scores, g.HomeStats.Shootout.Attempts))
	}
	col := t.MaxCol() + 1
	t.Set(col, 0, "Total")
	t.Set(col, 1, strconv.Itoa(g.AwayStats.Goals))
	t.Set(col, 2, strconv.Itoa(g.HomeStats.Goals))
	return t
}

func teamStatsTable(g domain.Game) *Table {
	t := NewTable()
	for i, h := range teamStatsHeader {
		t.Set(i, 0, h)
	}
	t.Set(0, 1, g.AwayTeam.TableEntry())
	t.Set(0, 2, g.HomeTeam.TableEntry())
	for i, stats := range []*domain.TeamStats{g.AwayStats, g.HomeStats} {
		row := i + 1
		t.Set(1, row, strconv.Itoa(stats.Shots))
		t.Set(2, row, strconv.Itoa(stats.Hits))
		t.Set(3, row, strconv.Itoa(stats.Blocked))
		t.Set(4, row, fmt.Sprintf("%.1f%%", stats.FaceoffWinPct))
		t.Set(5, row, strconv.Itoa(stats.Giveaways))
		t.Set(6, row, strconv.Itoa(stats.Takeaways))
		t.Set(7, row, stats.PowerPlayFraction())
	}
	return t
}

func goalDetailsTable(g domain.Game) *Table {
	t := NewTable()
	if len(g.Goals) == 0 {
		return t
	}
	for i, h := range goalDetailsHeader {
		t.Set(i, 0, h)
	}
	// Most recent goal first.
	for i := range g.Goals {
		goal := g.Goals[len(g.Goals)-1-i]
		t.Set(0, i+1, goal.Period)
		t.Set(1, i+1, goal.Time)
		t.Set(2, i+1, goal.Team.TableEntry())
		t.Set(3, i+1, goal.Strength)
		t.Set(4, i+1, goal.Goalie)
		t.Set(5, i+1, goal.Description)
	}
	return t
}

func penaltyDetailsTable(g domain.Game) *Table {
	t := NewTable()
	if len(g.Penalties) == 0 {
		return t
	}
	for i, h := range penaltyDetailsHeader {
		t.Set(i, 0, h)
	}
	for i := range g.Penalties {
		p := g.Penalties[len(g.Penalties)-1-i]
		t.Set(0, i+1, p.Period)
		t.Set(1, i+1, p.Time)
		t.Set(2, i+1, p.Team.TableEntry())
		t.Set(3, i+1, p.Severity)
		t.Set(4, i+1, strconv.Itoa(p.Minutes))
		t.Set(5, i+1, p.Description)
	}
	return t
}

func startTimesTable(start time.Time) *Table {
	t := NewTable()
	for i, h := range startTimesHeader {
		t.Set(i, 0, h)
	}
	for i, zone := range []*time.Location{zonePT, zoneMT, zoneCT, zoneET, zoneAT} {
		t.Set(i, 1, start.In(zone).Format(startTimeFormatNoTZ))
	}
	return t
}

func dayOverviewTable(games []DayGame) *Table {
	t := NewTable()
	for i, h := range dayOverviewHeader {
		t.Set(i, 0, h)
	}
	for i, dg := range games {
		g := dg.Game
		away, home := g.AwayTeam.TableEntry(), g.HomeTeam.TableEntry()
		started := g.Info.Started() && g.AwayStats != nil && g.HomeStats != nil
		if started {
			away = fmt.Sprintf("%s %d", away, g.AwayStats.Goals)
			home = fmt.Sprintf("%s %d", home, g.HomeStats.Goals)
		}
		t.Set(0, i+1, away+" - "+home)
		if started {
			t.Set(1, i+1, formattedClock(g.Info))
		} else {
			t.Set(1, i+1, formatStartTime(g.StartTime))
		}
		t.Set(2, i+1, dg.Link)
	}
	return t
}

func formatStartTime(start time.Time) string {
	return start.In(zoneET).Format(startTimeFormat)
}
