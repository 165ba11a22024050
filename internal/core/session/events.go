package session

import "time"

// Phase represents the timer's lifecycle state.
type Phase string

const (
	// PhaseIdle means a fresh, fully configured countdown that has not started.
	PhaseIdle Phase = "idle"
	// PhaseRunning means the countdown driver is active and ticking.
	PhaseRunning Phase = "running"
	// PhaseSuspended means the session is logically active but the process is
	// backgrounded, so no local ticks fire until reconciliation.
	PhaseSuspended Phase = "suspended"
	// PhasePaused means the countdown was halted, either by the user or by
	// completion.
	PhasePaused Phase = "paused"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventCompleted   EventType = "completed"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Remaining time.Duration
	Total     time.Duration
	Progress  float64
	// RewardEligible is set on completion events when the configured session
	// length was long enough to count toward a reward.
	RewardEligible bool
	At             time.Time
}
