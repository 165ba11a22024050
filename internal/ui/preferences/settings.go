package preferences

import (
	"time"

	"focusloop/internal/core/model"
)

// Chime volume bounds, in doublings around the recorded level.
const (
	ChimeVolumeMin = -3.0
	ChimeVolumeMax = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	FocusDuration      time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	ChimeEnabled bool
	ChimePath    string
	// ChimeVolume is in doublings around the recorded level, as consumed
	// by the playback volume effect.
	ChimeVolume float64

	// CompletedFocusCount carries the sequencer's rolling counter across
	// restarts so the long-break cadence is not reset by quitting the app.
	CompletedFocusCount int
}

// DefaultSettings returns default settings for FocusLoop.
func DefaultSettings() Settings {
	durations := model.DefaultDurations()
	return Settings{
		FocusDuration:      durations.Focus,
		ShortBreakDuration: durations.ShortBreak,
		LongBreakDuration:  durations.LongBreak,
		ChimeEnabled:       true,
	}
}

// Durations converts settings into the per-mode duration table.
func (settings Settings) Durations() model.Durations {
	return model.Durations{
		Focus:      settings.FocusDuration,
		ShortBreak: settings.ShortBreakDuration,
		LongBreak:  settings.LongBreakDuration,
	}
}
