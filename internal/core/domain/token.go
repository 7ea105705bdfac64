package domain

import (
	"errors"
	"time"
)

var (
	ErrTokenMalformed       = errors.New("token malformed")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrRefreshWindowExpired = errors.New("refresh window expired")
)

// Claims is the decoded payload of a session token. Tokens are bearer
// artifacts owned by the client; only the claims cross into the core.
type Claims struct {
	AccountID string
	Role      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
