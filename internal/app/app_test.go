package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/polyglot/internal/speech"
	"codeberg.org/snonux/polyglot/internal/store"
	"codeberg.org/snonux/polyglot/internal/translate"
)

// mockTranslator implements Translator for testing
type mockTranslator struct {
	backendConfigured bool
	userConfigured    bool
	calls             int
}

func (m *mockTranslator) Translate(ctx context.Context, text, source, target string) translate.Result {
	m.calls++
	return translate.Result{
		TranslatedText: "translated:" + text,
		OriginalText:   text,
		SourceLanguage: source,
		TargetLanguage: target,
	}
}

func (m *mockTranslator) IsBackendConfigured() bool { return m.backendConfigured }
func (m *mockTranslator) IsUserConfigured() bool    { return m.userConfigured }

// mockSynthesizer implements Synthesizer for testing
type mockSynthesizer struct {
	configured bool
	result     speech.SpeechResult
	calls      int
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, text, lang, voice string) speech.SpeechResult {
	m.calls++
	return m.result
}

func (m *mockSynthesizer) IsConfigured() bool { return m.configured }
func (m *mockSynthesizer) ClearCache()        {}

// mockPlayer implements Player for testing
type mockPlayer struct {
	err   error
	calls int
}

func (m *mockPlayer) Play(ctx context.Context, handle *speech.AudioHandle) error {
	m.calls++
	return m.err
}

// mockRecorder implements Recorder in memory
type mockRecorder struct {
	history   []store.TranslationRecord
	settings  store.Settings
	appendErr error
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{settings: store.DefaultSettings()}
}

func (m *mockRecorder) AppendHistory(rec store.TranslationRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.history = append([]store.TranslationRecord{rec}, m.history...)
	return nil
}

func (m *mockRecorder) ListHistory() []store.TranslationRecord    { return m.history }
func (m *mockRecorder) ClearHistory() error                       { m.history = nil; return nil }
func (m *mockRecorder) LoadSettings() store.Settings              { return m.settings }
func (m *mockRecorder) SaveSettings(s store.Settings) error       { m.settings = s; return nil }
func (m *mockRecorder) SaveCredential(value string) error         { return nil }
func (m *mockRecorder) LoadCredential() (string, error)           { return "", nil }
func (m *mockRecorder) ClearCredential() error                    { return nil }

func TestTranslate_RecordsHistory(t *testing.T) {
	rec := newMockRecorder()
	a := New(&mockTranslator{}, nil, nil, rec, nil)

	record, err := a.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if record.ID == "" {
		t.Error("Expected a generated record ID")
	}
	if record.TranslatedText != "translated:Hello" {
		t.Errorf("Unexpected translation: %q", record.TranslatedText)
	}
	if record.CreatedAt.IsZero() {
		t.Error("Expected a record timestamp")
	}

	history := rec.ListHistory()
	if len(history) != 1 || history[0].ID != record.ID {
		t.Errorf("Expected record in history, got %+v", history)
	}
}

func TestTranslate_RejectsEmptyInput(t *testing.T) {
	a := New(&mockTranslator{}, nil, nil, newMockRecorder(), nil)

	if _, err := a.Translate(context.Background(), "   ", "en", "es"); err == nil {
		t.Error("Expected error for blank input")
	}
}

func TestTranslate_AppendFailureIsNotFatal(t *testing.T) {
	rec := newMockRecorder()
	rec.appendErr = errors.New("disk full")
	a := New(&mockTranslator{}, nil, nil, rec, nil)

	record, err := a.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate must not fail on history errors: %v", err)
	}
	if record.TranslatedText == "" {
		t.Error("Expected a translation despite history failure")
	}
}

func TestTranslate_AutoSpeak(t *testing.T) {
	synth := &mockSynthesizer{
		configured: true,
		result: speech.SpeechResult{
			Success: true,
			Audio:   &speech.AudioHandle{Path: "/tmp/a.mp3"},
		},
	}
	player := &mockPlayer{}
	a := New(&mockTranslator{}, synth, player, newMockRecorder(), nil)

	record, err := a.Translate(context.Background(), "Hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if synth.calls != 1 {
		t.Errorf("Expected one synthesis call, got %d", synth.calls)
	}
	if player.calls != 1 {
		t.Errorf("Expected one playback, got %d", player.calls)
	}
	if !record.IsAudio || record.AudioRef != "/tmp/a.mp3" {
		t.Errorf("Expected audio-tagged record, got %+v", record)
	}
}

func TestTranslate_AutoSpeakDisabled(t *testing.T) {
	synth := &mockSynthesizer{configured: true}
	rec := newMockRecorder()
	rec.settings.AutoSpeakEnabled = false
	a := New(&mockTranslator{}, synth, &mockPlayer{}, rec, nil)

	if _, err := a.Translate(context.Background(), "Hello", "en", "es"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if synth.calls != 0 {
		t.Errorf("Expected no synthesis with auto-speak disabled, got %d calls", synth.calls)
	}
}

func TestTranslate_AutoSpeakSkippedWhenUnconfigured(t *testing.T) {
	synth := &mockSynthesizer{configured: false}
	a := New(&mockTranslator{}, synth, &mockPlayer{}, newMockRecorder(), nil)

	if _, err := a.Translate(context.Background(), "Hello", "en", "es"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if synth.calls != 0 {
		t.Errorf("Expected no synthesis without speech credential, got %d calls", synth.calls)
	}
}

func TestSpeak_SynthesisFailureSurfacesReason(t *testing.T) {
	synth := &mockSynthesizer{
		configured: true,
		result:     speech.SpeechResult{Reason: "quota exceeded"},
	}
	a := New(&mockTranslator{}, synth, &mockPlayer{}, newMockRecorder(), nil)

	err := a.Speak(context.Background(), "Hello", "es", "")
	if err == nil {
		t.Fatal("Expected error for failed synthesis")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Expected reason in error, got %v", err)
	}
}

func TestSpeak_WithoutSpeechServices(t *testing.T) {
	// A partially wired App must fail with an error, not panic.
	a := New(&mockTranslator{}, nil, nil, newMockRecorder(), nil)
	if err := a.Speak(context.Background(), "Hello", "es", ""); err == nil {
		t.Error("Expected error without a synthesizer")
	}

	synth := &mockSynthesizer{
		configured: true,
		result: speech.SpeechResult{
			Success: true,
			Audio:   &speech.AudioHandle{Path: "/tmp/a.mp3"},
		},
	}
	a = New(&mockTranslator{}, synth, nil, newMockRecorder(), nil)
	if err := a.Speak(context.Background(), "Hello", "es", ""); err == nil {
		t.Error("Expected error without a player")
	}
}

func TestSpeak_PlaybackErrorPropagates(t *testing.T) {
	synth := &mockSynthesizer{
		configured: true,
		result: speech.SpeechResult{
			Success: true,
			Audio:   &speech.AudioHandle{Path: "/tmp/a.mp3"},
		},
	}
	player := &mockPlayer{err: errors.New("no audio device")}
	a := New(&mockTranslator{}, synth, player, newMockRecorder(), nil)

	err := a.Speak(context.Background(), "Hello", "es", "")
	if err == nil || !strings.Contains(err.Error(), "no audio device") {
		t.Errorf("Expected playback error to propagate, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	a := New(
		&mockTranslator{backendConfigured: true},
		&mockSynthesizer{configured: true},
		&mockPlayer{}, newMockRecorder(), nil)

	status := a.Status()
	if !status.BackendConfigured || status.UserConfigured || !status.SpeechConfigured {
		t.Errorf("Unexpected status: %+v", status)
	}
}
