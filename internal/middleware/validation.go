package middleware

import (
	"regexp"
	"strings"
)

// Field length limits matching database schema constraints.
const (
	MaxUsernameLen = 32
	MaxEmailLen    = 254
	MaxTitleLen    = 200
	MaxContentLen  = 2000
	MaxNameLen     = 100
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID checks that a path parameter is a well-formed UUID. Returns the
// normalized id, or an empty id with a message when invalid.
func ValidateID(id, field string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", field + " is required"
	}
	if !uuidRe.MatchString(id) {
		return "", field + " must be a valid id"
	}
	return strings.ToLower(id), ""
}

// ValidateUsername checks a username path parameter or form field.
func ValidateUsername(username string) (string, string) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return "", "username is required"
	}
	if len(username) > MaxUsernameLen {
		return "", "username must be at most 32 characters"
	}
	if !usernameRe.MatchString(username) {
		return "", "username contains invalid characters"
	}
	return username, ""
}

// ValidateContent trims free text and bounds its length.
func ValidateContent(content string) (string, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", "content is required"
	}
	if len(content) > MaxContentLen {
		return "", "content must be at most 2000 characters"
	}
	return content, ""
}
