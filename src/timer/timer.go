// Package timer measures the cabin's dwell and idle countdowns against wall-clock stamps.
// Nothing runs in the background, so a stamp is never cancelled, only replaced.
package timer

import "time"

func Elapsed(since, now time.Time) time.Duration {
	return now.Sub(since)
}

// Expired reports whether strictly more than d has passed since the stamp.
func Expired(since, now time.Time, d time.Duration) bool {
	return Elapsed(since, now) > d
}
