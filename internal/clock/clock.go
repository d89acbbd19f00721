// Package clock converts clock times between 24-hour and 12-hour notation
// and validates values that are still being typed.
//
// Conversion failures are reported as sentinel result strings rather than
// errors, so a caller can display the result of any conversion directly.
package clock

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel results returned by the converters.
const (
	InvalidHour   = "Invalid hour"
	InvalidMinute = "Invalid minute"
	InvalidFormat = "Invalid format"
)

// Parse errors for the enum types.
var (
	ErrUnknownMode       = errors.New("mode must be 24to12 or 12to24")
	ErrUnknownMeridiem   = errors.New("meridiem must be am or pm")
	ErrUnknownHourPolicy = errors.New("hour policy must be strict or allow24")
)

// IsError reports whether a conversion result is one of the sentinel errors.
func IsError(result string) bool {
	switch result {
	case InvalidHour, InvalidMinute, InvalidFormat:
		return true
	default:
		return false
	}
}

// Mode is the direction of conversion.
type Mode int

const (
	Mode24To12 Mode = iota // 24-hour source, 12-hour target
	Mode12To24             // 12-hour source, 24-hour target
)

// ParseMode parses "24to12" or "12to24" (also "12" and "24" for the target).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "24to12", "12", "to12":
		return Mode24To12, nil
	case "12to24", "24", "to24":
		return Mode12To24, nil
	default:
		return Mode24To12, fmt.Errorf("%w, got %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string {
	if m == Mode12To24 {
		return "12to24"
	}
	return "24to12"
}

// Toggle returns the opposite direction.
func (m Mode) Toggle() Mode {
	if m == Mode12To24 {
		return Mode24To12
	}
	return Mode12To24
}

// SourceLabel names the notation the mode reads.
func (m Mode) SourceLabel() string {
	if m == Mode12To24 {
		return "12-Hour"
	}
	return "24-Hour"
}

// TargetLabel names the notation the mode produces.
func (m Mode) TargetLabel() string {
	return m.Toggle().SourceLabel()
}

// hourRange returns the inclusive hour bounds accepted on the source side.
func (m Mode) hourRange(p HourPolicy) (lo, hi int) {
	if m == Mode12To24 {
		return 1, 12
	}
	return 0, p.MaxHour()
}

// Meridiem is the AM/PM designator of a 12-hour time.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

// ParseMeridiem parses "am" or "pm" in any case.
func ParseMeridiem(s string) (Meridiem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "am":
		return AM, nil
	case "pm":
		return PM, nil
	default:
		return AM, fmt.Errorf("%w, got %q", ErrUnknownMeridiem, s)
	}
}

func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// Toggle returns the other meridiem.
func (m Meridiem) Toggle() Meridiem {
	if m == PM {
		return AM
	}
	return PM
}

// MeridiemOf returns the meridiem a 24-hour hour falls in.
// Hour 24 is midnight and therefore AM.
func MeridiemOf(hour int) Meridiem {
	if hour%24 >= 12 {
		return PM
	}
	return AM
}

// HourPolicy decides the upper bound of 24-hour input.
type HourPolicy int

const (
	// Strict accepts hours 0-23.
	Strict HourPolicy = iota
	// AllowMidnight24 also accepts 24 as midnight at the end of the day.
	// Only 24:00 is valid; 24 with non-zero minutes is an invalid minute.
	AllowMidnight24
)

// ParseHourPolicy parses "strict" or "allow24".
func ParseHourPolicy(s string) (HourPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "allow24":
		return AllowMidnight24, nil
	default:
		return Strict, fmt.Errorf("%w, got %q", ErrUnknownHourPolicy, s)
	}
}

func (p HourPolicy) String() string {
	if p == AllowMidnight24 {
		return "allow24"
	}
	return "strict"
}

// MaxHour returns the largest accepted 24-hour hour.
func (p HourPolicy) MaxHour() int {
	if p == AllowMidnight24 {
		return 24
	}
	return 23
}
