package ports

import (
	"context"
	"time"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// Issue returns a signed token for the account and its lifetime in seconds.
	Issue(account *domain.Account) (token string, expiresIn int64, err error)
	// Verify checks signature, expiry and revocation.
	Verify(ctx context.Context, token string) (*domain.Claims, error)
	// VerifyRefresh accepts an expired token while it is still inside the
	// refresh grace window measured from its issue time.
	VerifyRefresh(ctx context.Context, token string) (*domain.Claims, error)
	// Invalidate revokes the token for the remainder of its grace window.
	Invalidate(ctx context.Context, token string) error
}

// TokenDenylist stores the IDs of tokens revoked before their natural expiry.
// It must be shared across instances when the service runs replicated.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
