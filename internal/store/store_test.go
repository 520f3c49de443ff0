package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "polyglot.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(i int) TranslationRecord {
	return TranslationRecord{
		ID:             fmt.Sprintf("rec-%d", i),
		OriginalText:   fmt.Sprintf("hello %d", i),
		TranslatedText: fmt.Sprintf("hola %d", i),
		SourceLanguage: "en",
		TargetLanguage: "es",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestListHistory_Empty(t *testing.T) {
	s := newTestStore(t)

	if got := s.ListHistory(); len(got) != 0 {
		t.Errorf("Expected empty history, got %d records", len(got))
	}
}

func TestAppendHistory_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if err := s.AppendHistory(testRecord(i)); err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}
	}

	history := s.ListHistory()
	if len(history) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(history))
	}
	if history[0].ID != "rec-2" || history[2].ID != "rec-0" {
		t.Errorf("History not newest-first: %q, %q, %q",
			history[0].ID, history[1].ID, history[2].ID)
	}
}

func TestAppendHistory_CapsAtLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i <= HistoryLimit; i++ {
		if err := s.AppendHistory(testRecord(i)); err != nil {
			t.Fatalf("AppendHistory failed at %d: %v", i, err)
		}
	}

	history := s.ListHistory()
	if len(history) != HistoryLimit {
		t.Fatalf("Expected %d records after %d appends, got %d",
			HistoryLimit, HistoryLimit+1, len(history))
	}
	// The oldest record (rec-0) must have been evicted.
	if history[0].ID != fmt.Sprintf("rec-%d", HistoryLimit) {
		t.Errorf("Expected newest record first, got %q", history[0].ID)
	}
	if history[len(history)-1].ID != "rec-1" {
		t.Errorf("Expected rec-1 as oldest survivor, got %q", history[len(history)-1].ID)
	}
}

func TestClearHistory(t *testing.T) {
	s := newTestStore(t)

	if err := s.AppendHistory(testRecord(0)); err != nil {
		t.Fatalf("AppendHistory failed: %v", err)
	}
	if err := s.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}
	if got := s.ListHistory(); len(got) != 0 {
		t.Errorf("Expected empty history after clear, got %d records", len(got))
	}

	// Clearing again must be a no-op, not an error.
	if err := s.ClearHistory(); err != nil {
		t.Errorf("Second ClearHistory failed: %v", err)
	}
}

func TestListHistory_MalformedRecord(t *testing.T) {
	s := newTestStore(t)

	if err := s.set(keyHistory, []byte("{not json")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := s.ListHistory(); len(got) != 0 {
		t.Errorf("Expected empty history for malformed record, got %d", len(got))
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	s := newTestStore(t)

	settings := s.LoadSettings()
	want := DefaultSettings()
	if settings != want {
		t.Errorf("LoadSettings() = %+v, want defaults %+v", settings, want)
	}
	if settings.DefaultSourceLanguage != "en" || settings.DefaultTargetLanguage != "es" {
		t.Errorf("Unexpected default languages: %+v", settings)
	}
	if !settings.AutoSpeakEnabled {
		t.Error("Expected auto-speak enabled by default")
	}
	if settings.DarkModeEnabled {
		t.Error("Expected dark mode disabled by default")
	}
}

func TestSaveLoadSettings_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	saved := Settings{
		DefaultSourceLanguage: "de",
		DefaultTargetLanguage: "ja",
		DarkModeEnabled:       true,
		AutoSpeakEnabled:      false,
	}
	if err := s.SaveSettings(saved); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	if got := s.LoadSettings(); got != saved {
		t.Errorf("LoadSettings() = %+v, want %+v", got, saved)
	}
}

func TestLoadSettings_MalformedFallsBack(t *testing.T) {
	s := newTestStore(t)

	if err := s.set(keySettings, []byte("???")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if got := s.LoadSettings(); got != DefaultSettings() {
		t.Errorf("Expected defaults for malformed settings, got %+v", got)
	}
}

func TestCredentialLifecycle(t *testing.T) {
	s := newTestStore(t)

	// Absent credential reads as empty, never as an error.
	cred, err := s.LoadCredential()
	if err != nil {
		t.Fatalf("LoadCredential failed: %v", err)
	}
	if cred != "" {
		t.Errorf("Expected empty credential, got %q", cred)
	}

	if err := s.SaveCredential("sk-test-123"); err != nil {
		t.Fatalf("SaveCredential failed: %v", err)
	}
	cred, err = s.LoadCredential()
	if err != nil {
		t.Fatalf("LoadCredential failed: %v", err)
	}
	if cred != "sk-test-123" {
		t.Errorf("Expected 'sk-test-123', got %q", cred)
	}

	if err := s.ClearCredential(); err != nil {
		t.Fatalf("ClearCredential failed: %v", err)
	}
	cred, _ = s.LoadCredential()
	if cred != "" {
		t.Errorf("Expected empty credential after clear, got %q", cred)
	}

	// Idempotent clear.
	if err := s.ClearCredential(); err != nil {
		t.Errorf("Second ClearCredential failed: %v", err)
	}
}

func TestSaveCredential_RejectsEmpty(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveCredential("   "); err == nil {
		t.Error("Expected error for empty credential")
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(filepath.Join(dir, "state", "nested", "polyglot.db"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if err := s.AppendHistory(testRecord(0)); err != nil {
		t.Errorf("AppendHistory failed: %v", err)
	}
}
