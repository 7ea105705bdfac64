package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/learnhub/accounts-api/internal/core/domain"
)

const enrollmentsCollection = "enrollments"

// EnrollmentRepository reads course-enrollment counts owned by the course
// platform. This service never writes to the collection.
type EnrollmentRepository struct {
	coll *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database) *EnrollmentRepository {
	return &EnrollmentRepository{coll: db.Collection(enrollmentsCollection)}
}

func (r *EnrollmentRepository) Stats(ctx context.Context, accountID string) (domain.EnrollmentStats, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"user_id": accountID})
	if err != nil {
		return domain.EnrollmentStats{}, fmt.Errorf("count enrollments: %w", err)
	}

	completed, err := r.coll.CountDocuments(ctx, bson.M{
		"user_id":      accountID,
		"completed_at": bson.M{"$ne": nil},
	})
	if err != nil {
		return domain.EnrollmentStats{}, fmt.Errorf("count completed enrollments: %w", err)
	}

	return domain.EnrollmentStats{
		EnrolledCourses:  total,
		CompletedCourses: completed,
	}, nil
}
