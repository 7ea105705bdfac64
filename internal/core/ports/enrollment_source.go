package ports

import (
	"context"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

// EnrollmentSource exposes read-only enrollment counts owned by the course
// platform. This service only joins them into responses.
type EnrollmentSource interface {
	Stats(ctx context.Context, accountID string) (domain.EnrollmentStats, error)
}
