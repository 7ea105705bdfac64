package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/learnhub/accounts-api/internal/core/domain"
	"github.com/learnhub/accounts-api/internal/core/ports"
)

const tokenTypeAccess = "access"

// sessionClaims is the JWT payload of a session token.
type sessionClaims struct {
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

func (c *sessionClaims) toDomain() *domain.Claims {
	claims := &domain.Claims{
		AccountID: c.Subject,
		Role:      c.Role,
		TokenID:   c.ID,
	}
	if c.IssuedAt != nil {
		claims.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		claims.ExpiresAt = c.ExpiresAt.Time
	}
	return claims
}

// TokenService issues, verifies and refreshes HS256-signed session tokens.
// Verification itself is stateless; single-use refresh and logout are backed
// by a shared denylist keyed on the token ID.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	graceMul int
	denylist ports.TokenDenylist
}

// NewTokenService builds a TokenService. The refresh grace window is
// ttl × graceMultiplier, measured from a token's issue time.
func NewTokenService(secret string, ttl time.Duration, graceMultiplier int, denylist ports.TokenDenylist) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if graceMultiplier < 1 {
		graceMultiplier = 2
	}
	return &TokenService{
		secret:   []byte(secret),
		ttl:      ttl,
		graceMul: graceMultiplier,
		denylist: denylist,
	}
}

func (s *TokenService) Issue(account *domain.Account) (string, int64, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		Role:      account.Role,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int64(s.ttl.Seconds()), nil
}

// Verify checks signature, expiry and revocation, and returns the claims.
func (s *TokenService) Verify(ctx context.Context, token string) (*domain.Claims, error) {
	claims, err := s.parse(token, true)
	if err != nil {
		return nil, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims.toDomain(), nil
}

// VerifyRefresh validates a token presented for refresh. Expiry is ignored;
// instead the token must still be inside its grace window and not revoked.
func (s *TokenService) VerifyRefresh(ctx context.Context, token string) (*domain.Claims, error) {
	claims, err := s.parse(token, false)
	if err != nil {
		return nil, err
	}
	if claims.IssuedAt == nil {
		return nil, domain.ErrTokenMalformed
	}

	if time.Now().After(s.graceEnd(claims)) {
		return nil, domain.ErrRefreshWindowExpired
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims.toDomain(), nil
}

// Invalidate revokes the token until its grace window ends, so it can no
// longer pass Verify or be exchanged via refresh. Tokens already past the
// window are left alone; nothing accepts them anyway.
func (s *TokenService) Invalidate(ctx context.Context, token string) error {
	claims, err := s.parse(token, false)
	if err != nil {
		return err
	}
	if claims.IssuedAt == nil {
		return domain.ErrTokenMalformed
	}

	ttl := time.Until(s.graceEnd(claims))
	if ttl <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.ID, ttl)
}

func (s *TokenService) graceEnd(claims *sessionClaims) time.Time {
	return claims.IssuedAt.Add(s.ttl * time.Duration(s.graceMul))
}

func (s *TokenService) parse(token string, withExpiry bool) (*sessionClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if !withExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, domain.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrTokenExpired
	case err != nil, !parsed.Valid:
		return nil, domain.ErrTokenInvalid
	}

	if claims.TokenType != tokenTypeAccess || claims.Subject == "" || claims.ID == "" {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}
