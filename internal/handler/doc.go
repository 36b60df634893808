// Package handler implements the HTTP request handlers.
//
// This package provides the endpoints for:
// - GET /: ranked movie list
// - GET|POST /edit: rate and review a movie
// - GET /delete: remove a movie and rerank the rest
// - GET|POST /add: start adding a movie by title
// - GET /select: pick a candidate from the metadata search
// - GET /movie: commit a selected candidate into the list
// - GET /health: health check endpoint
//
// Failed form validation re-renders the originating form with field-level
// messages; store and gateway errors map to client-facing error pages.
package handler
