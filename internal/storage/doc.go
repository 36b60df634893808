// Package storage provides the BoltHold-based implementation of the movie
// repository.
//
// Movies are keyed by their ranking. Insert and delete each run inside a
// single bbolt write transaction: insert reads the current maximum ranking
// and writes the new row atomically, delete removes the row and re-keys all
// higher-ranked movies down by one. bbolt serializes write transactions, so
// concurrent mutations cannot break the dense 1..N ranking sequence.
package storage
