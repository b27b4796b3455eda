// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// SanitizeFilename keeps letters, digits, dash and underscore so a title can
// be embedded in a stored file name.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = regexp.MustCompile(`[^a-zA-Z0-9_-]`).ReplaceAllString(name, "")
	if len(name) > 64 {
		name = name[:64]
	}
	if name == "" {
		name = "file"
	}
	return name
}

// DefaultString returns fallback when value is empty
func DefaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
