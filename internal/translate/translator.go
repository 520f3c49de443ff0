package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/polyglot/internal/language"
)

// DemoPrefix marks a degraded translation: the backend was configured
// but failed, so the offline result is returned in its place.
const DemoPrefix = "[Demo] "

// CredentialSource supplies the user-entered backend credential.
// Implemented by the store.
type CredentialSource interface {
	LoadCredential() (string, error)
}

// Result is the outcome of a translation request. Translate never
// fails: every error path degrades into a usable TranslatedText.
type Result struct {
	TranslatedText string
	OriginalText   string
	SourceLanguage string
	TargetLanguage string
}

// Config holds the translator dependencies.
type Config struct {
	// APIKey is the build-time/environment credential. May be empty.
	APIKey string
	// BaseURL overrides the backend endpoint (used by tests).
	BaseURL string
	// Credentials supplies a user-entered credential when APIKey is
	// empty. May be nil.
	Credentials CredentialSource
	// Offline is the no-network fallback. Defaults to the built-in
	// phrase table.
	Offline OfflineProvider
	// Logger for degraded-path diagnostics. Defaults to a nop logger.
	Logger *zap.Logger
}

// Translator produces translations, preferring the chat-completion
// backend and degrading to the offline provider.
type Translator struct {
	apiKey  string
	baseURL string
	creds   CredentialSource
	offline OfflineProvider
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewTranslator creates a translator from cfg.
func NewTranslator(cfg Config) *Translator {
	if cfg.Offline == nil {
		cfg.Offline = NewPhraseTable(nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Translator{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		baseURL: cfg.BaseURL,
		creds:   cfg.Credentials,
		offline: cfg.Offline,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "translation-backend",
		}),
		logger: cfg.Logger,
	}
}

// Translate translates text from source to target. With no credential
// at all it answers from the offline provider unprefixed, since that
// is the expected default rather than a degradation. When the backend
// is configured but the request fails, the offline answer is returned
// with the DemoPrefix so callers can tell the two apart.
func (t *Translator) Translate(ctx context.Context, text, source, target string) Result {
	result := Result{
		OriginalText:   text,
		SourceLanguage: source,
		TargetLanguage: target,
	}

	key := t.resolveKey()
	if key == "" {
		result.TranslatedText = t.offline.Translate(text, target)
		return result
	}

	translated, err := t.callBackend(ctx, key, text, source, target)
	if err != nil {
		t.logger.Warn("translation backend failed, degrading to offline",
			zap.Error(err))
		result.TranslatedText = DemoPrefix + t.offline.Translate(text, target)
		return result
	}

	result.TranslatedText = translated
	return result
}

// IsBackendConfigured reports whether a build-time/environment
// credential is present. No network call.
func (t *Translator) IsBackendConfigured() bool {
	return t.apiKey != ""
}

// IsUserConfigured reports whether a user-entered credential is
// stored. No network call.
func (t *Translator) IsUserConfigured() bool {
	if t.creds == nil {
		return false
	}
	cred, err := t.creds.LoadCredential()
	return err == nil && strings.TrimSpace(cred) != ""
}

// resolveKey picks the build-time credential first, then the stored
// user credential.
func (t *Translator) resolveKey() string {
	if t.apiKey != "" {
		return t.apiKey
	}
	if t.creds == nil {
		return ""
	}
	cred, err := t.creds.LoadCredential()
	if err != nil {
		t.logger.Warn("failed to load stored credential", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(cred)
}

// callBackend issues a single chat-completion request through the
// circuit breaker. There are no retries; an open breaker fails fast.
func (t *Translator) callBackend(ctx context.Context, key, text, source, target string) (string, error) {
	clientConfig := openai.DefaultConfig(key)
	if t.baseURL != "" {
		clientConfig.BaseURL = t.baseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	instruction := fmt.Sprintf(
		"You are a professional translator. Translate the user's text from %s to %s. "+
			"Return only the translated text with no explanations. Preserve the tone, "+
			"formatting and proper nouns. If the text is already in %s, return it as-is.",
		language.DisplayName(source), language.DisplayName(target),
		language.DisplayName(target))

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   1000,
		Temperature: 0.3,
	}

	value, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("translation API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no translation returned")
		}
		translated := strings.TrimSpace(resp.Choices[0].Message.Content)
		if translated == "" {
			return nil, fmt.Errorf("empty translation returned")
		}
		return translated, nil
	})
	if err != nil {
		return "", err
	}
	return value.(string), nil
}
