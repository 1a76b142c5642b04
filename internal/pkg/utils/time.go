package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Clock times are handled as minute-of-day integers. Serialized "HH:MM"
// strings are only a wire format; comparing them lexicographically is wrong
// for non-padded input ("9:05" > "10:00"), so every comparison in the
// service goes through ParseClockTime first.

var errInvalidClockTime = errors.New("invalid clock time, want HH:MM with hour 0-23 and minute 00-59")

// ParseClockTime converts a 24-hour "HH:MM" string to its minute-of-day.
// The hour may be one or two digits; the minute must be exactly two.
// Whitespace, out-of-range values and "24:00" are rejected.
func ParseClockTime(s string) (int, error) {
	hourPart, minutePart, found := strings.Cut(s, ":")
	if !found {
		return 0, errInvalidClockTime
	}
	if len(hourPart) < 1 || len(hourPart) > 2 || len(minutePart) != 2 {
		return 0, errInvalidClockTime
	}
	if !isDigits(hourPart) || !isDigits(minutePart) {
		return 0, errInvalidClockTime
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, errInvalidClockTime
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, errInvalidClockTime
	}
	if hour > 23 || minute > 59 {
		return 0, errInvalidClockTime
	}
	return hour*60 + minute, nil
}

// FormatClockTime renders a minute-of-day as canonical zero-padded "HH:MM".
func FormatClockTime(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// ClockRangesOverlap reports whether two half-open intervals [startA, endA)
// and [startB, endB) overlap. Touching endpoints are not an overlap.
func ClockRangesOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
