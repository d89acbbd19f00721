package tui

import (
	"fmt"

	"github.com/javiermolinar/meridian/internal/clock"
)

// modeText holds the mode-dependent placeholders and hints.
type modeText struct {
	SourceLabel       string
	TargetLabel       string
	SourcePlaceholder string
	TargetPlaceholder string
	SourceHint        string
	TargetHint        string
}

func textForMode(mode clock.Mode, policy clock.HourPolicy) modeText {
	hourRange := fmt.Sprintf("00-%02d", policy.MaxHour())
	if mode == clock.Mode12To24 {
		return modeText{
			SourceLabel:       mode.SourceLabel(),
			TargetLabel:       mode.TargetLabel(),
			SourcePlaceholder: "e.g., 2:30 or 2",
			TargetPlaceholder: "e.g., 14:30",
			SourceHint:        "Format: HH:MM or HH (1-12)",
			TargetHint:        "Converted time (00-23)",
		}
	}
	return modeText{
		SourceLabel:       mode.SourceLabel(),
		TargetLabel:       mode.TargetLabel(),
		SourcePlaceholder: "e.g., 14:30 or 14",
		TargetPlaceholder: "e.g., 2:30 PM",
		SourceHint:        "Format: HH:MM or HH (" + hourRange + ")",
		TargetHint:        "Converted time with AM/PM",
	}
}
