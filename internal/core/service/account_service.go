package service

import (
	"context"
	"errors"
	"time"

	"github.com/learnhub/accounts-api/internal/core/domain"
	"github.com/learnhub/accounts-api/internal/core/ports"
)

// AccountService orchestrates the account lifecycle: registration, login,
// profile updates, admin reads and soft deletion. Email format and length are
// validated at the edge; uniqueness is enforced here and by the storage index.
type AccountService struct {
	repo        ports.AccountRepository
	enrollments ports.EnrollmentSource
	hasher      ports.PasswordHasher
	tokens      ports.TokenService
}

func NewAccountService(repo ports.AccountRepository, enrollments ports.EnrollmentSource, hasher ports.PasswordHasher, tokens ports.TokenService) *AccountService {
	return &AccountService{
		repo:        repo,
		enrollments: enrollments,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register creates the account with role "user" and immediately issues a
// session token: registration implies login.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, string, int64, error) {
	if _, err := s.repo.FindActiveByEmail(ctx, in.Email); err == nil {
		return nil, "", 0, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, "", 0, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", 0, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Create races the pre-check above; the unique index on active emails
	// resolves concurrent registrations by surfacing ErrEmailTaken here.
	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, "", 0, err
	}

	token, expiresIn, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", 0, err
	}
	return created, token, expiresIn, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// collapse into the same error so callers cannot enumerate accounts.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, int64, error) {
	account, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", 0, domain.ErrInvalidCredentials
		}
		return "", 0, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", 0, domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(account)
}

// RefreshToken exchanges a token inside its grace window for a fresh one. The
// presented token is revoked, making refresh single-use.
func (s *AccountService) RefreshToken(ctx context.Context, token string) (string, int64, error) {
	claims, err := s.tokens.VerifyRefresh(ctx, token)
	if err != nil {
		return "", 0, err
	}

	account, err := s.repo.FindActiveByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", 0, domain.ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err := s.tokens.Invalidate(ctx, token); err != nil {
		return "", 0, err
	}
	return s.tokens.Issue(account)
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.tokens.Invalidate(ctx, token)
}

// UpdateProfile applies the non-nil fields of upd. Email uniqueness is
// re-checked excluding the account's own row; a new password is re-hashed.
func (s *AccountService) UpdateProfile(ctx context.Context, account *domain.Account, upd ports.ProfileUpdate) (*domain.Account, error) {
	updated := *account

	if upd.Email != nil && *upd.Email != account.Email {
		owner, err := s.repo.FindActiveByEmail(ctx, *upd.Email)
		switch {
		case err == nil && owner.ID != account.ID:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrAccountNotFound):
			return nil, err
		}
		updated.Email = *upd.Email
	}
	if upd.Name != nil {
		updated.Name = *upd.Name
	}
	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = hash
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *AccountService) Stats(ctx context.Context, accountID string) (domain.EnrollmentStats, error) {
	return s.enrollments.Stats(ctx, accountID)
}

// ListAll returns every active account with its enrollment statistics.
// Soft-deleted accounts are excluded.
func (s *AccountService) ListAll(ctx context.Context) ([]ports.AccountWithStats, error) {
	accounts, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.AccountWithStats, 0, len(accounts))
	for _, account := range accounts {
		stats, err := s.enrollments.Stats(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.AccountWithStats{Account: account, Stats: stats})
	}
	return out, nil
}

// GetByID looks up an account including soft-deleted rows; a deleted account
// is reported as deleted rather than silently returned.
func (s *AccountService) GetByID(ctx context.Context, id string) (*ports.AccountWithStats, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.IsDeleted() {
		return nil, domain.ErrAccountDeleted
	}

	stats, err := s.enrollments.Stats(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AccountWithStats{Account: account, Stats: stats}, nil
}

// SoftDelete marks the account deleted. Deleting an already-deleted account
// succeeds (idempotent); only a missing row is not found.
func (s *AccountService) SoftDelete(ctx context.Context, id string) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account.IsDeleted() {
		return nil
	}
	return s.repo.SoftDelete(ctx, id, time.Now().UTC())
}
