package main

import (
	"testing"
	"time"

	"focusloop/internal/core/model"
	"focusloop/internal/core/session"
)

func TestForwardEventsSnapshotsCompletedMode(t *testing.T) {
	events := make(chan session.Event, 1)
	active := &currentMode{mode: model.ModeFocus}

	// Queue the scheduled work instead of running it, the way the fyne main
	// thread may lag behind the forwarding goroutine.
	var queued []func()
	run := func(work func()) { queued = append(queued, work) }

	var completed []model.Mode
	onCompleted := func(mode model.Mode, event session.Event) {
		completed = append(completed, mode)
	}

	events <- session.Event{Type: session.EventCompleted, Total: 25 * time.Minute}
	close(events)
	forwardEvents(events, active, run, func() {}, onCompleted)

	// A skip lands before the queued handler runs and reconfigures the
	// session; the handler must still see the mode that actually completed.
	active.Set(model.ModeShortBreak)
	for _, work := range queued {
		work()
	}

	if len(completed) != 1 {
		t.Fatalf("completion handlers run = %d, want 1", len(completed))
	}
	if completed[0] != model.ModeFocus {
		t.Fatalf("completed mode = %s, want %s", completed[0], model.ModeFocus)
	}
}

func TestForwardEventsRefreshesOnProgress(t *testing.T) {
	events := make(chan session.Event, 2)
	active := &currentMode{mode: model.ModeFocus}

	refreshes := 0
	run := func(work func()) { work() }

	events <- session.Event{Type: session.EventProgress}
	events <- session.Event{Type: session.EventStateChange}
	close(events)
	forwardEvents(events, active, run, func() { refreshes++ }, func(model.Mode, session.Event) {
		t.Fatal("progress events must not reach the completion handler")
	})

	if refreshes != 2 {
		t.Fatalf("refreshes = %d, want 2", refreshes)
	}
}

func TestModeAfterSkip(t *testing.T) {
	tests := []struct {
		mode model.Mode
		want model.Mode
	}{
		{model.ModeFocus, model.ModeShortBreak},
		{model.ModeShortBreak, model.ModeFocus},
		{model.ModeLongBreak, model.ModeFocus},
	}

	for _, test := range tests {
		if got := modeAfterSkip(test.mode); got != test.want {
			t.Errorf("modeAfterSkip(%s) = %s, want %s", test.mode, got, test.want)
		}
	}
}
