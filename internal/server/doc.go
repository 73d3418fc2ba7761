// Package server exposes the tool catalog and the calculators over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /api/categories
//	GET  /api/tools?q=&category=
//	GET  /api/tools/{slug}
//	POST /api/tools/{slug}/run
//	GET  /api/units
//	GET  /api/units/{family}
//
// Calculation failures are not HTTP failures: a run that fails validation
// answers 200 with an Outcome carrying the error kind. Non-2xx responses carry
// a JSON {"error": "..."} body.
package server
