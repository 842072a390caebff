// Package repositories implements SQLite persistence for the journal state.
//
// The journal keeps the original storage contract: the entire [models.AppState]
// is serialized as one JSON blob under a fixed key in the journal_state table.
// Every mutation writes the full blob; there is no incremental diffing.
//
// Key Implementations:
//   - [StateRepository] : Load/save of the state blob plus the two mutation
//     paths the domain allows - appending a daily entry and overwriting the
//     weekly mix
//
// An unreadable or unparsable stored record is discarded wholesale on load
// and replaced with the default empty state. The loss is logged, never
// surfaced to the user.
package repositories
