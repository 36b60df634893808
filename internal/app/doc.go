// Package app provides application initialization and lifecycle management.
//
// The App type wires all dependencies together and manages:
// - Configuration loading
// - Database initialization
// - HTTP server lifecycle
// - Graceful shutdown
package app
