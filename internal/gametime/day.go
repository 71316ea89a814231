package gametime

import "time"

// DayFormat is the wire format for calendar days, both in the feed's schedule
// endpoint and in the daily thread store.
const DayFormat = "2006-01-02"

// referenceZone fixes which calendar day a timestamp belongs to, independent
// of the deployment's local clock. UTC-12 means a day only rolls over once it
// has ended everywhere on earth.
var referenceZone = time.FixedZone("IDLW", -12*60*60)

// Day returns t's calendar day in the reference zone.
func Day(t time.Time) string {
	return t.In(referenceZone).Format(DayFormat)
}

// Yesterday returns the calendar day before now in the reference zone.
func Yesterday(now time.Time) string {
	return Day(now.AddDate(0, 0, -1))
}

// Tomorrow returns the calendar day after now in the reference zone.
func Tomorrow(now time.Time) string {
	return Day(now.AddDate(0, 0, 1))
}
