package utils

import (
	"crypto/subtle"
	"strings"
)

const bearerPrefix = "Bearer "

// ExtractBearerToken pulls the token out of an Authorization header.
// The "Bearer " prefix is case-sensitive; the token is trimmed.
func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}

// IsAuthorized reports whether the Authorization header carries the
// configured admin token. An empty configured token rejects everything.
func IsAuthorized(header, adminToken string) bool {
	if adminToken == "" {
		return false
	}
	token, ok := ExtractBearerToken(header)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1
}
