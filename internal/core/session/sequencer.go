package session

import (
	"sync"

	"focusloop/internal/core/model"
)

// focusRunLength is how many focus sessions complete before a long break.
const focusRunLength = 2

// Sequencer decides which mode follows a completed session, keeping a
// rolling count of completed focus sessions. The count survives restarts:
// it is seeded from the settings file and written back after each change.
type Sequencer struct {
	mu             sync.Mutex
	completedFocus int
}

// NewSequencer creates a Sequencer seeded with a persisted focus count.
// Out-of-range seeds fall back to zero.
func NewSequencer(completedFocus int) *Sequencer {
	if completedFocus < 0 || completedFocus >= focusRunLength {
		completedFocus = 0
	}
	return &Sequencer{completedFocus: completedFocus}
}

// NextMode returns the mode that follows the completed one. Completing a
// focus session advances the rolling counter; every focusRunLength-th focus
// completion yields a long break and resets it. Completing either break
// always returns to focus.
func (sequencer *Sequencer) NextMode(completed model.Mode) model.Mode {
	sequencer.mu.Lock()
	defer sequencer.mu.Unlock()

	switch completed {
	case model.ModeFocus:
		sequencer.completedFocus++
		if sequencer.completedFocus >= focusRunLength {
			sequencer.completedFocus = 0
			return model.ModeLongBreak
		}
		return model.ModeShortBreak
	case model.ModeShortBreak, model.ModeLongBreak:
		return model.ModeFocus
	}
	return model.ModeFocus
}

// CompletedFocusCount reports the rolling counter for persistence.
func (sequencer *Sequencer) CompletedFocusCount() int {
	sequencer.mu.Lock()
	defer sequencer.mu.Unlock()
	return sequencer.completedFocus
}
