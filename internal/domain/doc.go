// Package domain defines the core types and interfaces of the application.
//
// It contains the Movie entity, the transient SearchResult returned by the
// external metadata service, repository and searcher interfaces, and the
// sentinel errors used across layers.
package domain
