package usecase

import (
	"net/http"
	"strings"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
)

const bearerPrefix = "bearer "

// ExtractToken returns the token presented by the request and whether one was presented at all.
//
// Sources, in order: the auth_token query parameter, the Auth-Token header, and an
// Authorization header using the Bearer scheme. A source counts as presented as soon as
// it exists, even if empty.
func ExtractToken(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}

	if values, ok := r.URL.Query()[authDomain.TokenParam]; ok {
		if len(values) == 0 {
			return "", true
		}
		return values[0], true
	}

	if values, ok := r.Header[http.CanonicalHeaderKey(authDomain.TokenHeader)]; ok {
		if len(values) == 0 {
			return "", true
		}
		return values[0], true
	}

	authHeader := r.Header.Get("Authorization")
	if len(authHeader) >= len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return authHeader[len(bearerPrefix):], true
	}

	return "", false
}
