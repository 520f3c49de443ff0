package speech

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"codeberg.org/snonux/polyglot/internal/language"
)

// DefaultBaseURL is the production speech backend endpoint.
const DefaultBaseURL = "https://api.elevenlabs.io/v1"

// modelID is the fixed multilingual synthesis model.
const modelID = "eleven_multilingual_v2"

// voiceSettings are the fixed synthesis parameters sent with every
// request.
type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// SpeechResult is the outcome of a synthesis request. Synthesize
// never returns an error: failures collapse into Success=false with
// a descriptive Reason.
type SpeechResult struct {
	Success bool
	Audio   *AudioHandle
	Cached  bool
	Reason  string
}

// Config holds the synthesizer dependencies.
type Config struct {
	// APIKey for the speech backend. Empty means unconfigured: every
	// synthesis request fails fast without a network attempt.
	APIKey string
	// BaseURL overrides the backend endpoint (used by tests).
	BaseURL string
	// Cache for synthesized audio. Defaults to an unbounded cache.
	Cache *Cache
	// AudioDir receives the synthesized MP3 files. Defaults to a
	// per-process temp directory.
	AudioDir string
	// Logger for diagnostics. Defaults to a nop logger.
	Logger *zap.Logger
}

// Synthesizer turns (text, language) pairs into playable audio via
// the speech backend, memoizing results for the process lifetime.
type Synthesizer struct {
	apiKey   string
	client   *resty.Client
	cache    *Cache
	audioDir string
	logger   *zap.Logger
}

// NewSynthesizer creates a synthesizer from cfg.
func NewSynthesizer(cfg Config) *Synthesizer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Cache == nil {
		cfg.Cache = NewCache(nil)
	}
	if cfg.AudioDir == "" {
		cfg.AudioDir = filepath.Join(os.TempDir(), "polyglot-audio")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Synthesizer{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		client:   resty.New().SetBaseURL(cfg.BaseURL),
		cache:    cfg.Cache,
		audioDir: cfg.AudioDir,
		logger:   cfg.Logger,
	}
}

// IsConfigured reports whether a speech credential is present.
func (s *Synthesizer) IsConfigured() bool {
	return s.apiKey != ""
}

// Synthesize produces playable audio for text in the given language.
// The cache key is the exact concatenation of text and language; a
// hit returns the memoized handle without a network call. Voice
// selection: voiceOverride if given, else the per-language voice
// table, else the default voice. No retries on failure.
func (s *Synthesizer) Synthesize(ctx context.Context, text, lang, voiceOverride string) SpeechResult {
	if !s.IsConfigured() {
		return SpeechResult{Reason: "speech backend not configured"}
	}

	key := text + lang
	if handle, ok := s.cache.Get(key); ok {
		return SpeechResult{Success: true, Audio: handle, Cached: true}
	}

	voice := voiceOverride
	if voice == "" {
		voice = language.VoiceFor(lang)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/mpeg").
		SetBody(synthesisRequest{
			Text:    text,
			ModelID: modelID,
			VoiceSettings: voiceSettings{
				Stability:       0.5,
				SimilarityBoost: 0.75,
				Style:           0,
				UseSpeakerBoost: true,
			},
		}).
		Post("/text-to-speech/" + voice)
	if err != nil {
		s.logger.Warn("speech backend request failed", zap.Error(err))
		return SpeechResult{Reason: fmt.Sprintf("speech request failed: %v", err)}
	}
	if !resp.IsSuccess() {
		return SpeechResult{Reason: fmt.Sprintf("speech backend returned %s", resp.Status())}
	}

	audio := resp.Body()
	if len(audio) == 0 {
		return SpeechResult{Reason: "no audio data received"}
	}

	handle, err := s.writeAudio(key, voice, audio)
	if err != nil {
		s.logger.Warn("failed to write audio file", zap.Error(err))
		return SpeechResult{Reason: fmt.Sprintf("failed to store audio: %v", err)}
	}

	s.cache.Put(key, handle)
	return SpeechResult{Success: true, Audio: handle}
}

// ClearCache drops all memoized audio. Idempotent.
func (s *Synthesizer) ClearCache() {
	s.cache.Clear()
}

// writeAudio stores the audio payload under a hash-derived filename.
func (s *Synthesizer) writeAudio(key, voice string, audio []byte) (*AudioHandle, error) {
	if err := os.MkdirAll(s.audioDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}

	hash := md5.Sum([]byte(key))
	path := filepath.Join(s.audioDir, hex.EncodeToString(hash[:])+".mp3")
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return nil, fmt.Errorf("failed to write audio file: %w", err)
	}

	return &AudioHandle{Path: path, Voice: voice}, nil
}
