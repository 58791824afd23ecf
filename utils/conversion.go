package utils

import "fmt"

// ParseClock converts a 24h "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock value %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as a 12-hour clock label,
// e.g. 540 -> "9:00 AM".
func FormatClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

// FormatClockRange renders an interval label such as "9:00 AM - 10:30 AM".
func FormatClockRange(startMinutes, endMinutes int) string {
	return fmt.Sprintf("%s - %s", FormatClock(startMinutes), FormatClock(endMinutes))
}
