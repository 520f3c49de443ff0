package store

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Settings is the singleton user-settings record. It is replaced
// wholesale on every save.
type Settings struct {
	DefaultSourceLanguage string `json:"default_source_language"`
	DefaultTargetLanguage string `json:"default_target_language"`
	DarkModeEnabled       bool   `json:"dark_mode_enabled"`
	AutoSpeakEnabled      bool   `json:"auto_speak_enabled"`
}

// DefaultSettings returns the settings used when no record exists.
func DefaultSettings() Settings {
	return Settings{
		DefaultSourceLanguage: "en",
		DefaultTargetLanguage: "es",
		DarkModeEnabled:       false,
		AutoSpeakEnabled:      true,
	}
}

// SaveSettings replaces the stored settings record.
func (s *Store) SaveSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.set(keySettings, data)
}

// LoadSettings returns the stored settings, or the defaults when the
// record is absent or unreadable. It never fails the caller.
func (s *Store) LoadSettings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.get(keySettings)
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults", zap.Error(err))
		return DefaultSettings()
	}
	if len(data) == 0 {
		return DefaultSettings()
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		s.logger.Warn("discarding malformed settings, using defaults", zap.Error(err))
		return DefaultSettings()
	}
	if settings.DefaultSourceLanguage == "" || settings.DefaultTargetLanguage == "" {
		return DefaultSettings()
	}
	return settings
}
