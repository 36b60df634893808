// Package clients contains adapters for external services.
//
// The TMDB client implements domain.MovieSearcher over The Movie Database
// HTTP API, normalizing responses into domain.SearchResult. Transport
// failures, non-200 responses and undecodable bodies all surface as
// domain.ErrSearchUnavailable; there is no retry or fallback.
package clients
