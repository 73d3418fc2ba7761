// Package app wires application dependencies for the CLI and the servers.
//
// LoadConfig reads the YAML config (with ${VAR} expansion) over Defaults, and
// NewWire builds the catalog source, stores, services and the remote client
// from it, exposing them via the Wire struct. App is the thin facade the CLI
// commands call.
package app
