package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock and no
// clock-skew leeway, so expiry tests behave deterministically.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
