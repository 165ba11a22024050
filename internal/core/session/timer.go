package session

import (
	"fmt"
	"sync"
	"time"
)

// rewardEligibleAfter is the minimum configured session length that counts
// toward a reward when the session completes.
const rewardEligibleAfter = 20 * time.Minute

// Config contains runtime options for Timer.
type Config struct {
	TickInterval time.Duration
	Ticker       Ticker
	Clock        Clock
}

// Timer is a countdown state machine for a single session. It owns the
// remaining/total pair, the start/pause transitions and the wall-clock
// reconciliation applied after the process returns from the background.
//
// Guarded transitions report whether they took effect; a false return is a
// silent no-op, never an error. Observers receive updates on buffered
// channels, so event handling can never re-enter the timer while its lock
// is held.
type Timer struct {
	mu          sync.Mutex
	options     Config
	phase       Phase
	remaining   time.Duration
	total       time.Duration
	suspendedAt time.Time
	events      []chan Event
}

// New creates a Timer with the provided options, filling in the 1-second
// tick interval and the system ticker/clock when unset.
func New(options Config) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Ticker == nil {
		options.Ticker = &intervalTicker{}
	}
	if options.Clock == nil {
		options.Clock = systemClock{}
	}
	return &Timer{
		options: options,
		phase:   PhaseIdle,
	}
}

// Subscribe registers a new observer channel. Delivery is non-blocking:
// a subscriber that falls behind misses events rather than stalling ticks.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// SetDuration configures a fresh session of the given length in minutes.
// It is a guarded no-op while a session is logically active (running or
// suspended): a configuration change must never clobber a live countdown.
func (timer *Timer) SetDuration(minutes int) bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.phase == PhaseRunning || timer.phase == PhaseSuspended {
		return false
	}

	timer.total = time.Duration(minutes) * time.Minute
	timer.remaining = timer.total
	timer.phase = PhaseIdle
	timer.suspendedAt = time.Time{}

	timer.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     PhaseIdle,
		Remaining: timer.remaining,
		Total:     timer.total,
		At:        timer.options.Clock.Now(),
	})
	return true
}

// Start activates the countdown driver. It is a guarded no-op while the
// session is already active, and after a completion until the next
// SetDuration configures a fresh countdown.
func (timer *Timer) Start() bool {
	timer.mu.Lock()
	if timer.phase == PhaseRunning || timer.phase == PhaseSuspended || timer.remaining <= 0 {
		timer.mu.Unlock()
		return false
	}
	timer.phase = PhaseRunning
	timer.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     PhaseRunning,
		Remaining: timer.remaining,
		Total:     timer.total,
		Progress:  timer.progressLocked(),
		At:        timer.options.Clock.Now(),
	})
	timer.mu.Unlock()

	timer.options.Ticker.Start(timer.options.TickInterval, timer.handleTick)
	return true
}

// Pause halts the countdown and deactivates the driver. Idempotent; it also
// ends a background suspension, since a manual pause supersedes it.
func (timer *Timer) Pause() bool {
	timer.mu.Lock()
	if timer.phase != PhaseRunning && timer.phase != PhaseSuspended {
		timer.mu.Unlock()
		return false
	}
	timer.phase = PhasePaused
	timer.suspendedAt = time.Time{}
	timer.emitLocked(Event{
		Type:      EventStateChange,
		Phase:     PhasePaused,
		Remaining: timer.remaining,
		Total:     timer.total,
		Progress:  timer.progressLocked(),
		At:        timer.options.Clock.Now(),
	})
	timer.mu.Unlock()

	timer.options.Ticker.Stop()
	return true
}

// OnBackground records the suspension instant and stops local ticking.
// The session stays logically active; remaining time is settled against the
// wall clock on OnForeground. Repeated calls without an intervening
// foreground keep the first timestamp.
func (timer *Timer) OnBackground() bool {
	timer.mu.Lock()
	if timer.phase != PhaseRunning {
		timer.mu.Unlock()
		return false
	}
	timer.phase = PhaseSuspended
	timer.suspendedAt = timer.options.Clock.Now()
	timer.mu.Unlock()

	timer.options.Ticker.Stop()
	return true
}

// OnForeground deducts the wall-clock time spent suspended. If that exhausts
// the countdown, remaining clamps to zero and the session completes; otherwise
// the driver is reactivated, strictly after the reconciliation arithmetic.
// The suspension timestamp is always cleared.
func (timer *Timer) OnForeground() bool {
	timer.mu.Lock()
	if timer.phase != PhaseSuspended {
		timer.suspendedAt = time.Time{}
		timer.mu.Unlock()
		return false
	}

	elapsed := timer.options.Clock.Now().Sub(timer.suspendedAt)
	timer.suspendedAt = time.Time{}
	timer.remaining -= elapsed

	if timer.remaining <= 0 {
		timer.remaining = 0
		timer.completeLocked()
		timer.mu.Unlock()
		return true
	}

	timer.phase = PhaseRunning
	timer.emitLocked(Event{
		Type:      EventProgress,
		Phase:     PhaseRunning,
		Remaining: timer.remaining,
		Total:     timer.total,
		Progress:  timer.progressLocked(),
		At:        timer.options.Clock.Now(),
	})
	timer.mu.Unlock()

	timer.options.Ticker.Start(timer.options.TickInterval, timer.handleTick)
	return true
}

// Close deactivates the driver and closes all observer channels.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.phase == PhaseRunning || timer.phase == PhaseSuspended {
		timer.phase = PhasePaused
	}
	timer.suspendedAt = time.Time{}
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	timer.options.Ticker.Stop()
	for _, ch := range events {
		close(ch)
	}
}

// handleTick is the sole mutator of remaining during normal running.
// A tick that finds remaining already at zero completes the session.
func (timer *Timer) handleTick() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.phase != PhaseRunning {
		return
	}

	if timer.remaining > 0 {
		timer.remaining -= timer.options.TickInterval
		if timer.remaining < 0 {
			timer.remaining = 0
		}
		timer.emitLocked(Event{
			Type:      EventProgress,
			Phase:     PhaseRunning,
			Remaining: timer.remaining,
			Total:     timer.total,
			Progress:  timer.progressLocked(),
			At:        timer.options.Clock.Now(),
		})
		return
	}

	timer.completeLocked()
}

// completeLocked fires at most once per countdown: it parks the phase and
// stops the driver before emitting, so a stray tick or a second foreground
// cannot re-enter it.
func (timer *Timer) completeLocked() {
	timer.options.Ticker.Stop()
	timer.phase = PhasePaused
	timer.remaining = 0

	timer.emitLocked(Event{
		Type:           EventCompleted,
		Phase:          PhasePaused,
		Total:          timer.total,
		Progress:       1,
		RewardEligible: timer.total >= rewardEligibleAfter,
		At:             timer.options.Clock.Now(),
	})
}

// Remaining returns the time left in the current session.
func (timer *Timer) Remaining() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.remaining
}

// Total returns the configured length of the current session.
func (timer *Timer) Total() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.total
}

// Phase returns the current lifecycle state.
func (timer *Timer) Phase() Phase {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.phase
}

// Running reports whether a session is logically active, including while
// suspended in the background.
func (timer *Timer) Running() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.phase == PhaseRunning || timer.phase == PhaseSuspended
}

// IsPaused reports whether the timer is halted mid-session, as opposed to
// fresh or completed.
func (timer *Timer) IsPaused() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.phase == PhasePaused && timer.remaining > 0 && timer.remaining < timer.total
}

// Progress returns the completed fraction of the session: 0 when fresh,
// 1 at completion.
func (timer *Timer) Progress() float64 {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.progressLocked()
}

// FormattedRemaining renders the remaining time as MM:SS, both fields
// zero-padded. Other components rely on this exact shape.
func (timer *Timer) FormattedRemaining() string {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	seconds := int(timer.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (timer *Timer) progressLocked() float64 {
	if timer.total <= 0 {
		return 0
	}
	progress := float64(timer.total-timer.remaining) / float64(timer.total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (timer *Timer) emitLocked(event Event) {
	events := append([]chan Event(nil), timer.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
