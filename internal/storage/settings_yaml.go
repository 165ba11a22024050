package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"focusloop/internal/ui/preferences"
)

const (
	settingsFileName = "settings.yaml"
	historyFileName  = "history.db"
)

type yamlSettings struct {
	FocusMinutes        int     `yaml:"focus_minutes"`
	ShortBreakMinutes   int     `yaml:"short_break_minutes"`
	LongBreakMinutes    int     `yaml:"long_break_minutes"`
	ChimeEnabled        bool    `yaml:"chime_enabled"`
	ChimePath           string  `yaml:"chime_path"`
	ChimeVolume         float64 `yaml:"chime_volume"`
	CompletedFocusCount int     `yaml:"completed_focus_count"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// HistoryPath returns the location of the session history database.
func HistoryPath(appName string) (string, error) {
	return resolveConfigPath(appName, historyFileName)
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsTo writes settings to an explicit path.
func SaveSettingsTo(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusMinutes:        int(settings.FocusDuration / time.Minute),
		ShortBreakMinutes:   int(settings.ShortBreakDuration / time.Minute),
		LongBreakMinutes:    int(settings.LongBreakDuration / time.Minute),
		ChimeEnabled:        settings.ChimeEnabled,
		ChimePath:           settings.ChimePath,
		ChimeVolume:         settings.ChimeVolume,
		CompletedFocusCount: settings.CompletedFocusCount,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.FocusDuration = time.Duration(fileData.FocusMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.CompletedFocusCount > 0 {
		settings.CompletedFocusCount = fileData.CompletedFocusCount
	}

	if fileData.ChimeVolume >= preferences.ChimeVolumeMin && fileData.ChimeVolume <= preferences.ChimeVolumeMax {
		settings.ChimeVolume = fileData.ChimeVolume
	}

	settings.ChimeEnabled = fileData.ChimeEnabled
	settings.ChimePath = fileData.ChimePath
}
