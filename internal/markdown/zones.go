package markdown

import (
	"fmt"
	"time"
	// Deployment images may ship without a zone database; the start-time
	// table needs these five zones regardless.
	_ "time/tzdata"
)

var (
	zonePT = mustZone("America/Los_Angeles")
	zoneMT = mustZone("America/Denver")
	zoneCT = mustZone("America/Chicago")
	zoneET = mustZone("America/New_York")
	zoneAT = mustZone("America/Halifax")
)

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load zone %s: %v", name, err))
	}
	return loc
}
