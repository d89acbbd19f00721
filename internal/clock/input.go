package clock

import "strings"

// FormatInput cleans a raw keystroke value into the shape the converters
// expect: digits and at most one colon, at most two hour digits and two
// minute digits, five characters in total.
func FormatInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	value := b.String()

	hours, minutes, hasColon := strings.Cut(value, ":")
	if !hasColon {
		return truncate(value, 2)
	}
	// Anything after a second colon is dropped.
	minutes, _, _ = strings.Cut(minutes, ":")

	return truncate(truncate(hours, 2)+":"+truncate(minutes, 2), 5)
}

// IsValidPartial reports whether s could still become a valid source value
// for mode. s is normalized the way the converters normalize it. Callers use
// it to decide between showing an error and showing nothing while the user
// is mid-edit. Empty input is valid.
func IsValidPartial(s string, mode Mode, policy HourPolicy) bool {
	s = normalize(s)
	if s == "" {
		return true
	}

	parts := strings.Split(s, ":")
	if len(parts) > 2 {
		return false
	}

	lo, hi := mode.hourRange(policy)
	hours, ok := leadingInt(parts[0])
	if !ok || hours < lo || hours > hi {
		return false
	}

	if len(parts) == 2 && parts[1] != "" {
		minutes, ok := leadingInt(parts[1])
		if !ok || minutes < 0 || minutes > 59 {
			return false
		}
		if hours == 24 && minutes > 0 {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
