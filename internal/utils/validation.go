package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen - the shape of source keys
	validKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateSourceKey validates that an energy source key is safe and within
// reasonable limits. It does not check that the key exists in the dataset;
// an unknown key simply yields an empty result downstream.
func ValidateSourceKey(key string) error {
	if key == "" {
		return errors.New("source cannot be empty")
	}

	if len(key) > 50 {
		return errors.New("source too long (max 50 characters)")
	}

	if !validKeyPattern.MatchString(key) {
		return errors.New("source contains invalid characters")
	}

	return nil
}

// ValidateCountryName validates a country name parameter. Names are free
// text (they come from the dataset's Entity column), so only length and
// markup are checked.
func ValidateCountryName(name string) error {
	if name == "" {
		return errors.New("country cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("country too long (max 100 characters)")
	}

	if htmlTagPattern.MatchString(name) {
		return errors.New("country contains invalid characters")
	}

	return nil
}

// ValidateYearRange checks that a start/end pair is ordered. Years outside
// the dataset are allowed; they match nothing.
func ValidateYearRange(start, end int) error {
	if start > end {
		return errors.New("startYear must not be after endYear")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}
