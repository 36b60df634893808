// Package views holds the server-rendered HTML templates, embedded into the
// binary, and the template engine constructor used by the HTTP server.
package views
