// Package gametime decides when a game's artifacts are due for upkeep and
// pins calendar-day arithmetic to a fixed reference zone.
package gametime

import "time"

// Default posting window around a game.
const (
	DefaultLeadMinutes  = 60
	DefaultTrailMinutes = 60
)

// InPostingWindow reports whether a game's artifacts should be created or
// updated right now. The window opens lead before the scheduled start and
// closes trail after the reported end. Both boundaries are exclusive: exactly
// lead before start, or exactly trail after end, is outside the window.
//
// A nil end means the game is presumed in progress and the window stays
// open. A game whose end never arrives therefore gets updated on every tick
// until the feed finally reports one.
func InPostingWindow(now, start time.Time, end *time.Time, lead, trail time.Duration) bool {
	if !now.Add(lead).After(start) {
		// Not starting for a while yet.
		return false
	}
	if end == nil {
		return true
	}
	if !now.Add(-trail).Before(*end) {
		// Ended long enough ago that the final stats have settled.
		return false
	}
	return true
}
