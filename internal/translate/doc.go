// Package translate produces translations via an OpenAI-compatible
// chat-completion backend, degrading gracefully when no credential is
// configured or the backend fails. Degraded answers come from a fixed
// offline phrase table; a backend failure is marked with a visible
// "[Demo] " prefix so callers can distinguish it from a genuine
// translation. No error is ever returned to the caller.
package translate
