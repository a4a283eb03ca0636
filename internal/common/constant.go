// Package common contains shared constants and sentinel errors used across
// gophauth components.
package common

import "strings"

const (
	// AuthorizationHeaderName carries the bearer credential on API requests.
	AuthorizationHeaderName = "Authorization"
	// BearerScheme is the only auth scheme the API accepts.
	BearerScheme = "Bearer"
)

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerScheme + " " + token
}

// ParseBearer extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func ParseBearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been handed over.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
