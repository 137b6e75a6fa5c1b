package utils

import "time"

// NormalizeClock canonicalizes a time-of-day string to HH:MM:SS. The server
// may send either HH:MM or HH:MM:SS; anything unparseable comes back
// unchanged so the caller can decide what to do with it.
func NormalizeClock(clock string) string {
	if t, err := time.Parse("15:04:05", clock); err == nil {
		return t.Format("15:04:05")
	}
	if t, err := time.Parse("15:04", clock); err == nil {
		return t.Format("15:04:05")
	}
	return clock
}
