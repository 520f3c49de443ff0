// Package language holds the static language catalog and the
// per-language text-to-speech voice table. Both are fixed data,
// not user state.
package language
