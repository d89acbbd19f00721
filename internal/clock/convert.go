package clock

import (
	"fmt"
	"strings"
	"unicode"
)

// maxParsed caps parsed integers; anything larger is out of range anyway.
const maxParsed = 9999

// To12 converts a 24-hour time ("H", "HH", "H:MM", "HH:MM") to 12-hour
// notation such as "2:30 PM". Spaces are ignored and "." is accepted as a
// separator. Empty input yields an empty result.
func To12(s string, policy HourPolicy) string {
	s = normalize(s)
	if s == "" || s == ":" {
		return ""
	}

	if !strings.Contains(s, ":") {
		hours, ok := leadingInt(s)
		if !ok || hours < 0 || hours > policy.MaxHour() {
			return InvalidHour
		}
		return format12(hours, 0)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return InvalidFormat
	}

	hours, ok := leadingInt(parts[0])
	if !ok || hours < 0 || hours > policy.MaxHour() {
		return InvalidHour
	}
	minutes, ok := leadingInt(parts[1])
	if !ok {
		minutes = 0
	}
	if minutes < 0 || minutes > 59 || (hours == 24 && minutes > 0) {
		return InvalidMinute
	}

	return format12(hours, minutes)
}

// To24 converts a 12-hour time ("H", "HH", "H:MM", "HH:MM", hours 1-12) with
// the given meridiem to zero-padded 24-hour notation such as "14:30".
// A trailing "AM"/"PM" in s is ignored; the meridiem argument decides.
func To24(s string, meridiem Meridiem) string {
	s = normalize(s)
	if s == "" || s == ":" {
		return ""
	}

	if !strings.Contains(s, ":") {
		hours, ok := leadingInt(s)
		if !ok || hours < 1 || hours > 12 {
			return InvalidHour
		}
		return format24(hours, 0, meridiem)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return InvalidFormat
	}

	hours, ok := leadingInt(parts[0])
	if !ok || hours < 1 || hours > 12 {
		return InvalidHour
	}
	minutes, ok := leadingInt(parts[1])
	if !ok {
		minutes = 0
	}
	if minutes < 0 || minutes > 59 {
		return InvalidMinute
	}

	return format24(hours, minutes, meridiem)
}

// Convert runs the converter for mode.
func Convert(s string, mode Mode, meridiem Meridiem, policy HourPolicy) string {
	if mode == Mode12To24 {
		return To24(s, meridiem)
	}
	return To12(s, policy)
}

func format12(hours, minutes int) string {
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes, MeridiemOf(hours))
}

func format24(hours, minutes int, meridiem Meridiem) string {
	military := hours
	switch {
	case meridiem == AM && hours == 12:
		military = 0
	case meridiem == PM && hours != 12:
		military = hours + 12
	}
	return fmt.Sprintf("%02d:%02d", military, minutes)
}

// normalize drops whitespace and folds "." separators into ":".
func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '.':
			return ':'
		default:
			return r
		}
	}, s)
}

// leadingInt parses the optionally signed run of digits at the start of s
// and ignores whatever follows it, so "30PM" parses as 30.
func leadingInt(s string) (int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < maxParsed {
			n = n*10 + int(s[i]-'0')
		}
	}
	if i == start {
		return 0, false
	}
	if n > maxParsed {
		n = maxParsed
	}
	if neg {
		n = -n
	}
	return n, true
}
