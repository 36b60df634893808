package forms

import (
	"strconv"
	"strings"
)

const (
	maxFieldLen = 250
	minRating   = 1
	maxRating   = 10
)

// FieldErrors maps a form field name to its validation message. A nil or
// empty map means the input is valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// ValidateAddMovie checks the single title field of the add-movie form and
// returns the trimmed title on success.
func ValidateAddMovie(title string) (string, FieldErrors) {
	errs := FieldErrors{}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		errs["title"] = "Title is required"
	} else if len(trimmed) > maxFieldLen {
		errs["title"] = "Title must be 250 characters or fewer"
	}

	if !errs.Valid() {
		return "", errs
	}
	return trimmed, nil
}

// ValidateRateReview checks the rating/review pair of the edit form and
// returns the parsed rating and review on success.
func ValidateRateReview(rating, review string) (int, string, FieldErrors) {
	errs := FieldErrors{}

	parsed, err := strconv.Atoi(strings.TrimSpace(rating))
	if err != nil {
		errs["rating"] = "Rating must be a whole number"
	} else if parsed < minRating || parsed > maxRating {
		errs["rating"] = "Rating must be between 1 and 10"
	}

	if review == "" {
		errs["review"] = "Review is required"
	} else if len(review) > maxFieldLen {
		errs["review"] = "Review must be 250 characters or fewer"
	}

	if !errs.Valid() {
		return 0, "", errs
	}
	return parsed, review, nil
}
