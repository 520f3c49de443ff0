// Package app contains the core orchestration for polyglot. It wires
// the translation client, the speech synthesis client and the store
// behind the user-facing operations: translate-and-record, speak,
// history, settings and credential management. Services are injected
// explicitly so the package carries no global state.
package app
