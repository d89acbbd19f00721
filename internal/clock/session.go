package clock

import "strings"

// Session holds the state of one interactive conversion: the value being
// typed, its converted result and the settings that drive the conversion.
type Session struct {
	Source   string
	Target   string
	Mode     Mode
	Meridiem Meridiem
	Policy   HourPolicy
}

// NewSession creates an empty session.
func NewSession(mode Mode, meridiem Meridiem, policy HourPolicy) *Session {
	return &Session{Mode: mode, Meridiem: meridiem, Policy: policy}
}

// SetSource cleans raw with FormatInput, stores it and converts it.
func (s *Session) SetSource(raw string) string {
	s.Source = FormatInput(raw)
	return s.Convert()
}

// Convert recomputes Target from Source and returns it.
//
// A failed conversion is blanked instead of reported only while the value is
// still a valid partial input. Anything else, including a lone out-of-range
// digit such as "0" in 12-to-24 mode, shows the sentinel.
func (s *Session) Convert() string {
	src := strings.TrimSpace(s.Source)
	if src == "" {
		s.Target = ""
		return s.Target
	}

	result := Convert(src, s.Mode, s.Meridiem, s.Policy)
	if IsError(result) && IsValidPartial(src, s.Mode, s.Policy) {
		result = ""
	}
	s.Target = result
	return s.Target
}

// Toggle flips the conversion direction and feeds the current result back in
// as the new source, so the visible conversion is inverted. When the result
// carries an AM/PM suffix it becomes the session meridiem.
func (s *Session) Toggle() {
	previous := s.Target
	s.Mode = s.Mode.Toggle()
	if s.Mode == Mode12To24 {
		if m, ok := meridiemSuffix(previous); ok {
			s.Meridiem = m
		}
	}
	s.SetSource(previous)
}

// LoadPreset loads a 24-hour preset such as "18:45". In 12-to-24 mode the
// preset is entered in its 12-hour form and its meridiem is selected.
func (s *Session) LoadPreset(hhmm string) string {
	if s.Mode == Mode12To24 {
		if value, m, ok := Split12(To12(hhmm, s.Policy)); ok {
			s.Meridiem = m
			return s.SetSource(value)
		}
	}
	return s.SetSource(hhmm)
}

// ToggleMeridiem flips AM/PM and reconverts.
func (s *Session) ToggleMeridiem() {
	s.SetMeridiem(s.Meridiem.Toggle())
}

// SetMeridiem sets AM/PM and reconverts.
func (s *Session) SetMeridiem(m Meridiem) {
	s.Meridiem = m
	s.Convert()
}

// Clear empties both values.
func (s *Session) Clear() {
	s.Source = ""
	s.Target = ""
}

// Copyable returns the result when it is worth copying.
func (s *Session) Copyable() (string, bool) {
	if s.Target == "" || IsError(s.Target) {
		return "", false
	}
	return s.Target, true
}

// Split12 splits a 12-hour result such as "2:30 PM" into its time and meridiem.
func Split12(result string) (string, Meridiem, bool) {
	value, suffix, found := strings.Cut(strings.TrimSpace(result), " ")
	if !found {
		return result, AM, false
	}
	m, err := ParseMeridiem(suffix)
	if err != nil {
		return result, AM, false
	}
	return value, m, true
}

func meridiemSuffix(s string) (Meridiem, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(s, "AM"):
		return AM, true
	case strings.HasSuffix(s, "PM"):
		return PM, true
	default:
		return AM, false
	}
}

// StripMeridiem removes a trailing AM/PM marker from s in any case and
// spacing ("2:30 PM", "2:30pm", "11 am"). ok reports whether one was found.
func StripMeridiem(s string) (string, Meridiem, bool) {
	trimmed := strings.TrimSpace(s)
	m, ok := meridiemSuffix(trimmed)
	if !ok {
		return s, AM, false
	}
	return strings.TrimSpace(trimmed[:len(trimmed)-2]), m, true
}
