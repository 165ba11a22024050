package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	focusMin     *widget.Entry
	shortMin     *widget.Entry
	longMin      *widget.Entry
	chimeEnabled *widget.Check
	chimePath    *widget.Entry
	chimeVolume  *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FocusLoop Settings")

	focusMin := widget.NewEntry()
	shortMin := widget.NewEntry()
	longMin := widget.NewEntry()
	chimePath := widget.NewEntry()
	chimePath.SetPlaceHolder("path to a .wav file (optional)")

	focusMin.SetText(fmt.Sprintf("%d", int(settings.FocusDuration.Minutes())))
	shortMin.SetText(fmt.Sprintf("%d", int(settings.ShortBreakDuration.Minutes())))
	longMin.SetText(fmt.Sprintf("%d", int(settings.LongBreakDuration.Minutes())))
	chimePath.SetText(settings.ChimePath)

	chimeEnabled := widget.NewCheck("Play a chime when a session ends", nil)
	chimeEnabled.SetChecked(settings.ChimeEnabled)

	chimeVolume := widget.NewSlider(ChimeVolumeMin, ChimeVolumeMax)
	chimeVolume.Value = settings.ChimeVolume
	chimeVolume.Step = 0.5

	form := container.NewVBox(
		widget.NewLabelWithStyle("Session lengths", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus"), focusMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), shortMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longMin, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		chimeEnabled,
		chimePath,
		widget.NewLabel("Chime volume"),
		chimeVolume,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 320))

	prefs := &Window{
		window:       window,
		settings:     settings,
		onSave:       onSave,
		focusMin:     focusMin,
		shortMin:     shortMin,
		longMin:      longMin,
		chimeEnabled: chimeEnabled,
		chimePath:    chimePath,
		chimeVolume:  chimeVolume,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.focusMin.SetText(fmt.Sprintf("%d", int(settings.FocusDuration.Minutes())))
	prefs.shortMin.SetText(fmt.Sprintf("%d", int(settings.ShortBreakDuration.Minutes())))
	prefs.longMin.SetText(fmt.Sprintf("%d", int(settings.LongBreakDuration.Minutes())))
	prefs.chimeEnabled.SetChecked(settings.ChimeEnabled)
	prefs.chimePath.SetText(settings.ChimePath)
	prefs.chimeVolume.Value = settings.ChimeVolume
	prefs.chimeVolume.Refresh()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focusMin.Text); ok {
		settings.FocusDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortMin.Text); ok {
		settings.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longMin.Text); ok {
		settings.LongBreakDuration = time.Duration(minutes) * time.Minute
	}

	settings.ChimeEnabled = prefs.chimeEnabled.Checked
	settings.ChimePath = prefs.chimePath.Text
	settings.ChimeVolume = prefs.chimeVolume.Value

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
