package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expiryLeeway refreshes a little ahead of the real expiry so the request
// does not race the deadline.
const expiryLeeway = 10 * time.Second

// accessTokenExpired reports whether a JWT access token is past its exp
// claim. The signature is not checked: the client only needs the timestamp,
// the backend does the verifying. Tokens that are not JWTs or carry no exp
// are treated as live and left to the server to reject.
func accessTokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Add(expiryLeeway).Before(exp.Time)
}
