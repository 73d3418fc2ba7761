// Package domain defines the catalog and calculation models and the
// interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
package domain
