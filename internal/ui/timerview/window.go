package timerview

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines timer window action handlers.
type Callbacks struct {
	OnToggleRun func()
	OnSkip      func()
}

// Window shows the current session countdown.
type Window struct {
	window     fyne.Window
	modeLabel  *widget.Label
	timeLabel  *widget.Label
	progress   *widget.ProgressBar
	todayLabel *widget.Label
	toggle     *widget.Button
	skip       *widget.Button
}

// New creates the main timer window. Closing it hides the window; the app
// keeps running in the tray.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("FocusLoop")

	modeLabel := widget.NewLabelWithStyle("Focus", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	timeLabel := widget.NewLabelWithStyle("25:00", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	progress := widget.NewProgressBar()
	todayLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	toggle := widget.NewButton("Start", func() {
		if callbacks.OnToggleRun != nil {
			callbacks.OnToggleRun()
		}
	})
	skip := widget.NewButton("Skip", func() {
		if callbacks.OnSkip != nil {
			callbacks.OnSkip()
		}
	})

	buttons := container.NewHBox(layout.NewSpacer(), toggle, skip, layout.NewSpacer())
	content := container.NewVBox(
		modeLabel,
		timeLabel,
		progress,
		buttons,
		todayLabel,
	)

	window.SetContent(content)
	window.Resize(fyne.NewSize(300, 220))
	window.SetCloseIntercept(window.Hide)

	return &Window{
		window:     window,
		modeLabel:  modeLabel,
		timeLabel:  timeLabel,
		progress:   progress,
		todayLabel: todayLabel,
		toggle:     toggle,
		skip:       skip,
	}
}

// Show displays the timer window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetMode updates the session mode label.
func (view *Window) SetMode(label string) {
	view.modeLabel.SetText(label)
}

// SetCountdown updates the time label and progress bar.
func (view *Window) SetCountdown(timeLabel string, progress float64) {
	view.timeLabel.SetText(timeLabel)
	view.progress.SetValue(progress)
}

// SetRunning flips the toggle button between Start and Pause.
func (view *Window) SetRunning(running bool) {
	if running {
		view.toggle.SetText("Pause")
	} else {
		view.toggle.SetText("Start")
	}
}

// SetCompletedToday updates the daily focus-session tally.
func (view *Window) SetCompletedToday(count int) {
	if count == 1 {
		view.todayLabel.SetText("1 focus session today")
		return
	}
	view.todayLabel.SetText(fmt.Sprintf("%d focus sessions today", count))
}
