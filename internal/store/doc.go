// Package store provides local persistence for calcbox.
//
// It contains concrete implementations of the domain storage interfaces:
//   - Preferences (PreferenceFileStore), a JSON file written atomically
//     under the user's home directory
//   - Calculation history (HistoryDB), a SQLite database
//
// All methods are safe for concurrent use.
package store
