// Package main runs catalogd, the calcbox HTTP server. It serves the tool
// catalog and runs calculators for remote clients such as
// `calcbox --server URL`.
//
// HTTP API
//
//	GET /healthz
//	    Liveness, with the number of catalog tools.
//
//	GET /api/categories
//	    Every category with its icon, color and tool count; All comes first.
//
//	GET /api/tools?q=TEXT&category=NAME
//	    Tools whose name or description contains TEXT, within NAME (default
//	    All). Carries an ETag of the catalog and answers If-None-Match with 304.
//
//	GET /api/tools/{slug}
//	    One tool with its description rendered to HTML, its page route, its
//	    category meta and, when runnable, its parameters.
//
//	POST /api/tools/{slug}/run { "args": { "name": "value" } }
//	    Run a tool. Calculation failures are 200 with an error kind in the
//	    Outcome; unknown tools are 404 and coming-soon tools 501.
//
//	GET /api/units, GET /api/units/{family}
//	    The unit tables used by the converters.
//
//	/mcp
//	    The MCP tools over streamable HTTP.
//
// Behaviour
//
//   - Settings come from the calcbox config file (server, logging,
//     compression, catalog and history keys).
//   - Responses are JSON and gzip-compressed above compression.min_size.
//   - An access log line per request goes to stdout in text or JSON.
//   - With catalog.watch, edits to catalog.path are picked up without a
//     restart; an invalid edit keeps the previous catalog.
//   - SIGINT or SIGTERM drains in-flight requests before exiting.
package main
