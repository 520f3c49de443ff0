package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/polyglot/internal"
	"codeberg.org/snonux/polyglot/internal/speech"
	"codeberg.org/snonux/polyglot/internal/store"
	"codeberg.org/snonux/polyglot/internal/translate"
)

// Translator is the translation service the app orchestrates.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) translate.Result
	IsBackendConfigured() bool
	IsUserConfigured() bool
}

// Synthesizer is the speech service the app orchestrates.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang, voiceOverride string) speech.SpeechResult
	IsConfigured() bool
	ClearCache()
}

// Player plays synthesized audio.
type Player interface {
	Play(ctx context.Context, handle *speech.AudioHandle) error
}

// Recorder is the slice of the store the app needs.
type Recorder interface {
	AppendHistory(rec store.TranslationRecord) error
	ListHistory() []store.TranslationRecord
	ClearHistory() error
	LoadSettings() store.Settings
	SaveSettings(settings store.Settings) error
	SaveCredential(value string) error
	LoadCredential() (string, error)
	ClearCredential() error
}

// App wires the translation client, the speech client and the store
// behind the user-facing operations. All services are injected so
// tests can substitute doubles.
type App struct {
	translator  Translator
	synthesizer Synthesizer
	player      Player
	store       Recorder
	logger      *zap.Logger
}

// New creates the application service layer.
func New(translator Translator, synthesizer Synthesizer, player Player, recorder Recorder, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		translator:  translator,
		synthesizer: synthesizer,
		player:      player,
		store:       recorder,
		logger:      logger,
	}
}

// Translate translates text and records the result in the history.
// When auto-speak is enabled and the speech backend is configured,
// the translation is also spoken; speech failures are logged, never
// fatal to the translation flow.
func (a *App) Translate(ctx context.Context, text, source, target string) (store.TranslationRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return store.TranslationRecord{}, fmt.Errorf("nothing to translate")
	}

	result := a.translator.Translate(ctx, text, source, target)

	rec := store.TranslationRecord{
		ID:             internal.NewRecordID(),
		OriginalText:   result.OriginalText,
		TranslatedText: result.TranslatedText,
		SourceLanguage: result.SourceLanguage,
		TargetLanguage: result.TargetLanguage,
		CreatedAt:      time.Now().UTC(),
	}

	if a.synthesizer != nil && a.store.LoadSettings().AutoSpeakEnabled && a.synthesizer.IsConfigured() {
		speechResult := a.synthesizer.Synthesize(ctx, rec.TranslatedText, target, "")
		if speechResult.Success {
			rec.IsAudio = true
			rec.AudioRef = speechResult.Audio.Path
			if a.player != nil {
				if err := a.player.Play(ctx, speechResult.Audio); err != nil {
					a.logger.Warn("auto-speak playback failed", zap.Error(err))
				}
			}
		} else {
			a.logger.Warn("auto-speak synthesis failed",
				zap.String("reason", speechResult.Reason))
		}
	}

	if err := a.store.AppendHistory(rec); err != nil {
		a.logger.Warn("failed to record translation history", zap.Error(err))
	}
	return rec, nil
}

// Speak synthesizes and plays text in the given language. A failed
// synthesis surfaces its reason as an error on this direct path.
func (a *App) Speak(ctx context.Context, text, lang, voiceOverride string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("nothing to speak")
	}
	if a.synthesizer == nil {
		return fmt.Errorf("speech synthesis not available")
	}

	result := a.synthesizer.Synthesize(ctx, text, lang, voiceOverride)
	if !result.Success {
		return fmt.Errorf("speech synthesis failed: %s", result.Reason)
	}
	if a.player == nil {
		return fmt.Errorf("audio playback not available")
	}
	return a.player.Play(ctx, result.Audio)
}

// History returns the stored translation history, newest first.
func (a *App) History() []store.TranslationRecord {
	return a.store.ListHistory()
}

// ClearHistory wipes the stored translation history.
func (a *App) ClearHistory() error {
	return a.store.ClearHistory()
}

// Settings returns the current settings (defaults when unset).
func (a *App) Settings() store.Settings {
	return a.store.LoadSettings()
}

// SaveSettings replaces the settings record wholesale.
func (a *App) SaveSettings(settings store.Settings) error {
	return a.store.SaveSettings(settings)
}

// SetCredential stores the user-supplied translation credential.
func (a *App) SetCredential(value string) error {
	return a.store.SaveCredential(value)
}

// ClearCredential removes the stored translation credential.
func (a *App) ClearCredential() error {
	return a.store.ClearCredential()
}

// Status summarizes which backends are usable.
type Status struct {
	BackendConfigured bool // build-time/environment translation credential
	UserConfigured    bool // stored user translation credential
	SpeechConfigured  bool
}

// Status reports backend configuration without any network calls.
func (a *App) Status() Status {
	s := Status{
		BackendConfigured: a.translator.IsBackendConfigured(),
		UserConfigured:    a.translator.IsUserConfigured(),
	}
	if a.synthesizer != nil {
		s.SpeechConfigured = a.synthesizer.IsConfigured()
	}
	return s
}
