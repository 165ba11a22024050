package main

import (
	"log"
	"sync"
	"time"

	"focusloop/internal/core/model"
	"focusloop/internal/core/session"
	"focusloop/internal/platform"
	"focusloop/internal/sound"
	"focusloop/internal/storage"
	"focusloop/internal/ui/preferences"
	"focusloop/internal/ui/timerview"
	"focusloop/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FocusLoop"

// currentMode tracks which mode the configured session belongs to. It is
// written on the fyne main thread and read by the event forwarding goroutine.
type currentMode struct {
	mu   sync.Mutex
	mode model.Mode
}

func (current *currentMode) Set(mode model.Mode) {
	current.mu.Lock()
	current.mode = mode
	current.mu.Unlock()
}

func (current *currentMode) Get() model.Mode {
	current.mu.Lock()
	defer current.mu.Unlock()
	return current.mode
}

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.focusloop.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	timer := session.New(session.Config{TickInterval: time.Second})
	sequencer := session.NewSequencer(settings.CompletedFocusCount)

	var history *storage.History
	if historyPath, pathErr := storage.HistoryPath(appName); pathErr != nil {
		log.Printf("history path: %v", pathErr)
	} else if history, err = storage.OpenHistory(historyPath); err != nil {
		log.Printf("open history: %v", err)
		history = nil
	}

	var chime *sound.Chime
	if settings.ChimeEnabled && settings.ChimePath != "" {
		if chime, err = sound.LoadChime(settings.ChimePath); err != nil {
			log.Printf("load chime: %v", err)
		}
	}
	chime.SetVolume(settings.ChimeVolume)

	// Everything below runs on the fyne main thread; timer events are
	// forwarded onto it through fyne.Do.
	durations := settings.Durations()
	active := &currentMode{mode: model.ModeFocus}
	timer.SetDuration(durations.MinutesFor(active.Get()))

	var view *timerview.Window
	var trayManager *tray.Manager
	var prefsWindow *preferences.Window

	refresh := func() {
		mode := active.Get()
		view.SetMode(mode.Label())
		view.SetCountdown(timer.FormattedRemaining(), timer.Progress())
		view.SetRunning(timer.Running())
		trayManager.SetMode(mode.Label())
		trayManager.SetStatus(timer.FormattedRemaining())
		trayManager.SetRunning(timer.Running())
	}

	refreshDailyCount := func() {
		if history == nil {
			return
		}
		count, countErr := history.CompletedFocusOn(time.Now())
		if countErr != nil {
			log.Printf("count focus sessions: %v", countErr)
			return
		}
		view.SetCompletedToday(count)
	}

	applyMode := func(next model.Mode) {
		active.Set(next)
		timer.SetDuration(durations.MinutesFor(next))
		refresh()
	}

	toggleRun := func() {
		if timer.Running() {
			timer.Pause()
		} else {
			timer.Start()
		}
		refresh()
	}

	// Skipping abandons the session without counting it, so the sequencer's
	// focus counter stays untouched.
	skipSession := func() {
		timer.Pause()
		applyMode(modeAfterSkip(active.Get()))
	}

	persistCounter := func() {
		settings.CompletedFocusCount = sequencer.CompletedFocusCount()
		if saveErr := storage.SaveSettings(appName, settings); saveErr != nil {
			log.Printf("save settings: %v", saveErr)
		}
		prefsWindow.UpdateSettings(settings)
	}

	handleCompletion := func(completed model.Mode, event session.Event) {
		if history != nil {
			record := storage.SessionRecord{
				Mode:         completed,
				Duration:     event.Total,
				RewardEarned: completed == model.ModeFocus && event.RewardEligible,
				CompletedAt:  event.At,
			}
			if recordErr := history.RecordCompletion(record); recordErr != nil {
				log.Printf("record completion: %v", recordErr)
			}
		}
		chime.Play()

		next := sequencer.NextMode(completed)
		message := completed.Label() + " session complete."
		if completed == model.ModeFocus && event.RewardEligible {
			message = completed.Label() + " session complete. Reward earned!"
		}
		fyneApp.SendNotification(fyne.NewNotification("FocusLoop", message+" Next: "+next.Label()))

		persistCounter()
		applyMode(next)
		refreshDailyCount()
	}

	view = timerview.New(fyneApp, timerview.Callbacks{
		OnToggleRun: toggleRun,
		OnSkip:      skipSession,
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShowTimer:   func() { view.Show() },
		OnPreferences: func() { prefsWindow.Show() },
		OnToggleRun:   toggleRun,
		OnSkip:        skipSession,
		OnQuit: func() {
			timer.Close()
			if history != nil {
				_ = history.Close()
			}
			fyneApp.Quit()
		},
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		updated.CompletedFocusCount = sequencer.CompletedFocusCount()
		settings = updated
		durations = settings.Durations()
		chime.SetVolume(settings.ChimeVolume)
		if !timer.Running() {
			timer.SetDuration(durations.MinutesFor(active.Get()))
		}
		if saveErr := storage.SaveSettings(appName, settings); saveErr != nil {
			log.Printf("save settings: %v", saveErr)
		}
		refresh()
	})

	lifecycle := fyneApp.Lifecycle()
	lifecycle.SetOnExitedForeground(func() {
		timer.OnBackground()
	})
	lifecycle.SetOnEnteredForeground(func() {
		timer.OnForeground()
		refresh()
	})

	go forwardEvents(timer.Subscribe(8), active, fyne.Do, refresh, handleCompletion)

	refresh()
	refreshDailyCount()
	view.Show()
	fyneApp.Run()
}

// forwardEvents translates timer events into main-thread UI work. The
// completed mode is snapshotted when the event is received, so a skip that
// reconfigures the timer before the handler runs cannot misattribute the
// completion.
func forwardEvents(
	events <-chan session.Event,
	active *currentMode,
	run func(func()),
	onRefresh func(),
	onCompleted func(model.Mode, session.Event),
) {
	for event := range events {
		event := event
		switch event.Type {
		case session.EventCompleted:
			completed := active.Get()
			run(func() { onCompleted(completed, event) })
		default:
			run(onRefresh)
		}
	}
}

func modeAfterSkip(mode model.Mode) model.Mode {
	if mode == model.ModeFocus {
		return model.ModeShortBreak
	}
	return model.ModeFocus
}
