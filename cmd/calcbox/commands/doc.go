// Package commands defines the calcbox CLI and wires dependencies for subcommands.
//
// Commands
//
//   - convert, temp, base, sci, roman, words   Converters
//   - date {diff,age,add,leap,week,workdays}   Date arithmetic
//   - countdown                                 Time left until a date (--watch ticks live)
//   - gcd (lcm), prime, factorial, stats        Number theory and statistics
//   - quadratic, triangle                       Equations and geometry
//   - emi, bmi, bmr, bodyfat, idealweight       Finance and health
//   - text                                      Case conversion and word counts
//   - tools, run                                Browse the catalog, run any tool by slug
//   - history, prefs                            Past runs and saved preferences
//   - repl, serve, mcp                          Interactive, HTTP and MCP surfaces
//
// # Implementation
//
// The root command loads the YAML config and builds the dependency graph
// (catalog source, stores, services, optional remote client) before any
// subcommand runs. Every calculator command is a thin mapping from positional
// arguments and flags onto a catalog tool, so runs from the CLI, the REPL, the
// HTTP API and MCP share validation, formatting and history. With --server the
// same tool runs on a remote calcbox server instead.
package commands
