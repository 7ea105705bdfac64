package ports

import (
	"context"
	"time"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

// AccountRepository defines the interface for account persistence. Lookups
// state explicitly whether soft-deleted rows are included.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindActiveByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindActiveByID(ctx context.Context, id string) (*domain.Account, error)
	// FindByID includes soft-deleted rows; callers decide how to report them.
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	ListActive(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
