package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"focusloop/internal/ui/preferences"
)

func TestLoadSettingsFromMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("missing file did not yield defaults: %+v", settings)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	saved := preferences.Settings{
		FocusDuration:       30 * time.Minute,
		ShortBreakDuration:  7 * time.Minute,
		LongBreakDuration:   20 * time.Minute,
		ChimeEnabled:        true,
		ChimePath:           "/tmp/chime.wav",
		ChimeVolume:         -1.5,
		CompletedFocusCount: 1,
	}
	if err := SaveSettingsTo(path, saved); err != nil {
		t.Fatalf("SaveSettingsTo: %v", err)
	}

	loaded, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if loaded != saved {
		t.Fatalf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestLoadSettingsIgnoresNonPositiveMinutes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "focus_minutes: 0\nshort_break_minutes: -3\nlong_break_minutes: 10\nchime_enabled: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}

	defaults := preferences.DefaultSettings()
	if loaded.FocusDuration != defaults.FocusDuration {
		t.Errorf("focus duration = %v, want default %v", loaded.FocusDuration, defaults.FocusDuration)
	}
	if loaded.ShortBreakDuration != defaults.ShortBreakDuration {
		t.Errorf("short break duration = %v, want default %v", loaded.ShortBreakDuration, defaults.ShortBreakDuration)
	}
	if loaded.LongBreakDuration != 10*time.Minute {
		t.Errorf("long break duration = %v, want 10m", loaded.LongBreakDuration)
	}
}

func TestLoadSettingsIgnoresOutOfRangeChimeVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "chime_enabled: true\nchime_volume: 5.0\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if loaded.ChimeVolume != preferences.DefaultSettings().ChimeVolume {
		t.Fatalf("chime volume = %v, want default", loaded.ChimeVolume)
	}
}

func TestLoadSettingsFromMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettingsFrom(path)
	if err == nil {
		t.Fatal("malformed yaml did not report an error")
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("malformed yaml did not fall back to defaults: %+v", settings)
	}
}
