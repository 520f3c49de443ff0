// Package speech produces playable audio for (text, language) pairs
// via an ElevenLabs-style synthesis backend. Results are memoized in
// an in-memory cache for the process lifetime; synthesis failures
// collapse into a result object rather than an error, while playback
// failures propagate to the caller.
package speech
