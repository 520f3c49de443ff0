// Package store persists the three logical application records --
// translation history, user settings and the optional translation
// provider credential -- in a single-table SQLite key/value store.
// Every operation is a single keyed read or write; there is no
// multi-step protocol and no migration scheme, so readers fall back
// to defaults when a record is absent or old-shaped.
package store
