package model

import "time"

// Mode identifies the kind of session being timed.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Label returns the name shown in the tray and the timer window.
func (mode Mode) Label() string {
	switch mode {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// Durations holds the configured session length per mode.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5/15 split.
func DefaultDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// For returns the configured duration for the given mode.
func (durations Durations) For(mode Mode) time.Duration {
	switch mode {
	case ModeShortBreak:
		return durations.ShortBreak
	case ModeLongBreak:
		return durations.LongBreak
	default:
		return durations.Focus
	}
}

// MinutesFor returns the configured length of mode in whole minutes,
// the unit the session timer is configured in.
func (durations Durations) MinutesFor(mode Mode) int {
	return int(durations.For(mode) / time.Minute)
}
