package serializer

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// LastSeenDisplay renders how long ago a user was seen, relative to now.
func LastSeenDisplay(now time.Time, lastSeen *time.Time) string {
	if lastSeen == nil {
		return "никогда"
	}

	diff := now.Sub(*lastSeen)
	switch {
	case diff < time.Minute:
		return "только что"
	case diff < time.Hour:
		return fmt.Sprintf("%d мин", int(diff/time.Minute))
	case diff < day:
		return fmt.Sprintf("%d ч", int(diff/time.Hour))
	case diff < 30*day:
		return fmt.Sprintf("%d дн", int(diff/day))
	default:
		return lastSeen.UTC().Format("02.01.2006")
	}
}
