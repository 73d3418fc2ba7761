// Package remote provides an HTTP implementation of the domain.CatalogClient
// interface, for browsing and running tools on a calcbox server.
//
// Supported operations include:
//   - Listing the catalog filtered by search term and category.
//   - Running a tool with string arguments and receiving its Outcome.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path, status text and the server's error message when it sent one.
package remote
