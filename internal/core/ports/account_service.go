package ports

import (
	"context"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

// RegisterInput carries the already format-validated registration fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileUpdate carries optional profile changes; nil fields stay untouched.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// AccountWithStats pairs an account with its enrollment statistics.
type AccountWithStats struct {
	Account *domain.Account
	Stats   domain.EnrollmentStats
}

type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, string, int64, error)
	Login(ctx context.Context, email, password string) (string, int64, error)
	RefreshToken(ctx context.Context, token string) (string, int64, error)
	Logout(ctx context.Context, token string) error
	UpdateProfile(ctx context.Context, account *domain.Account, upd ProfileUpdate) (*domain.Account, error)
	Stats(ctx context.Context, accountID string) (domain.EnrollmentStats, error)
	ListAll(ctx context.Context) ([]AccountWithStats, error)
	GetByID(ctx context.Context, id string) (*AccountWithStats, error)
	SoftDelete(ctx context.Context, id string) error
}
