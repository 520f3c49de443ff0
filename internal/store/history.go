package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HistoryLimit caps the stored translation history. Appending beyond
// the cap evicts the oldest entries.
const HistoryLimit = 100

// TranslationRecord is one entry of the translation history. Records
// are immutable once created and are only removed by ClearHistory.
type TranslationRecord struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	CreatedAt      time.Time `json:"created_at"`
	IsAudio        bool      `json:"is_audio"`
	AudioRef       string    `json:"audio_ref,omitempty"`
}

// AppendHistory prepends rec to the stored history and truncates the
// list to HistoryLimit entries, newest first. The read-modify-write
// cycle runs under the store mutex so concurrent appends cannot lose
// records.
func (s *Store) AppendHistory(rec TranslationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.readHistory()
	history = append([]TranslationRecord{rec}, history...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return s.set(keyHistory, data)
}

// ListHistory returns the stored history, newest first. Internal
// failures are logged and mapped to an empty list; the caller never
// sees an error.
func (s *Store) ListHistory() []TranslationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readHistory()
}

// ClearHistory wipes the entire history record. Idempotent.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(keyHistory)
}

// readHistory loads the history list without locking. A missing,
// unreadable or old-shaped record reads as empty.
func (s *Store) readHistory() []TranslationRecord {
	data, err := s.get(keyHistory)
	if err != nil {
		s.logger.Warn("failed to load translation history", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var history []TranslationRecord
	if err := json.Unmarshal(data, &history); err != nil {
		s.logger.Warn("discarding malformed translation history", zap.Error(err))
		return nil
	}
	return history
}
