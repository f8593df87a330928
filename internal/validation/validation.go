// Package validation provides format checks for user-supplied strings.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/spotlighthub/spotlight-api/internal/constants"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
)

// Usernames that would collide with routes or branding.
var reservedUsernames = map[string]struct{}{
	"admin":     {},
	"api":       {},
	"www":       {},
	"spotlight": {},
	"spotify":   {},
	"auth":      {},
	"login":     {},
	"register":  {},
	"profile":   {},
	"settings":  {},
}

// ValidEmail reports whether email is a well-formed address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidUsername reports whether username is 3-50 characters of
// alphanumerics and underscores and not a reserved word.
func ValidUsername(username string) bool {
	if !usernamePattern.MatchString(username) {
		return false
	}
	_, reserved := reservedUsernames[strings.ToLower(username)]
	return !reserved
}

// ValidPassword reports whether password meets the minimum length.
func ValidPassword(password string) bool {
	return len(password) >= constants.MinPasswordLength
}

// ValidURL reports whether raw is an absolute http or https URL.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidSpotifyURL reports whether raw is an absolute URL on a Spotify domain.
func ValidSpotifyURL(raw string) bool {
	if !ValidURL(raw) {
		return false
	}
	return strings.Contains(raw, "spotify.com")
}
