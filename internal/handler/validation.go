package handler

import (
	"errors"
	"strconv"
)

const maxExternalID = 999999999

var (
	errInvalidRanking    = errors.New("invalid ranking")
	errInvalidExternalID = errors.New("invalid external id")
)

// parseRanking validates and parses a ranking query parameter.
func parseRanking(raw string) (int, error) {
	if raw == "" {
		return 0, errInvalidRanking
	}

	ranking, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidRanking
	}

	// Rankings are 1-based
	if ranking < 1 {
		return 0, errInvalidRanking
	}

	return ranking, nil
}

// parseExternalID validates and parses a TMDB movie id query parameter.
func parseExternalID(raw string) (int64, error) {
	if raw == "" {
		return 0, errInvalidExternalID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidExternalID
	}

	if id <= 0 || id > maxExternalID {
		return 0, errInvalidExternalID
	}

	return id, nil
}
