package site

import (
	"fmt"
	"time"
)

// UnknownDate is shown for items the feed did not date.
const UnknownDate = "neznámo"

var prague = loadPrague()

func loadPrague() *time.Location {
	loc, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatDate renders a timestamp as "d. m. yyyy HH:MM" in Europe/Prague.
// A nil timestamp renders as UnknownDate.
func FormatDate(t *time.Time) string {
	if t == nil {
		return UnknownDate
	}
	local := t.In(prague)
	return fmt.Sprintf("%d. %d. %d %02d:%02d",
		local.Day(), int(local.Month()), local.Year(), local.Hour(), local.Minute())
}
