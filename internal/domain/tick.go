package domain

import "time"

// TickStats holds statistics about one reconciliation tick.
type TickStats struct {
	Scheduled int
	Tracked   int
	Created   int
	Updated   int
	Skipped   int
	Errors    int
	Duration  time.Duration
}
