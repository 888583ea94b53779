package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the bearer token has expired as of now.
// The claims are decoded without signature verification; the backend is
// the authority on validity, this only lets the client trigger its
// sign-in redirect before burning a round trip. A malformed token counts
// as expired. A token without an exp claim never expires client side
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}

	return now.After(exp.Time)
}
