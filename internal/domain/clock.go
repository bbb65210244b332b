package domain

import "time"

// ClockLayout is the wire format for a time of day.
const ClockLayout = "15:04"

// ValidClock reports whether s is a 24-hour HH:MM time of day.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
