package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnPreferences func()
	OnToggleRun   func()
	OnSkip        func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	skipItem   *fyne.MenuItem
	callbacks  Callbacks
	running    bool
	modeLabel  string
	timeLabel  string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		modeLabel: "Focus",
	}

	manager.statusItem = fyne.NewMenuItem("Focus", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.skipItem = fyne.NewMenuItem("Skip session", func() {
		if manager.callbacks.OnSkip != nil {
			manager.callbacks.OnSkip()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status line with the current countdown.
func (manager *Manager) SetStatus(timeLabel string) {
	manager.timeLabel = timeLabel
	manager.refreshStatus()
}

// SetMode updates the mode shown in the status line.
func (manager *Manager) SetMode(modeLabel string) {
	manager.modeLabel = modeLabel
	manager.refreshStatus()
}

// SetRunning flips the toggle item between Start and Pause.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.refreshStatus()
}

func (manager *Manager) refreshStatus() {
	status := fmt.Sprintf("%s - %s", manager.modeLabel, manager.timeLabel)
	if manager.timeLabel == "" {
		status = manager.modeLabel
	}
	if !manager.running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = status
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("FocusLoop",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		manager.toggleItem,
		manager.skipItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
