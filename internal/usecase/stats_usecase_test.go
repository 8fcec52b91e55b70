package usecase_test

import (
	"context"
	"testing"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdminStats(t *testing.T) {
	classRepo := newFakeClassRepo()
	classRepo.statusCounts[entity.ClassStatusApproved] = 7
	classRepo.statusCounts[entity.ClassStatusPending] = 3
	classRepo.totalClasses = 12
	userStore := newFakeUserStore(
		entity.User{Email: "a@example.com", Role: entity.UserRoleInstructor},
		entity.User{Email: "b@example.com", Role: entity.UserRoleInstructor},
		entity.User{Email: "c@example.com", Role: entity.UserRoleUser},
	)
	enrollmentRepo := &fakeEnrollmentRepo{
		enrollments: []entity.Enrollment{
			{ID: primitive.NewObjectID()},
			{ID: primitive.NewObjectID()},
		},
	}
	uc := usecase.NewStatsUsecase(classRepo, userStore, enrollmentRepo)

	stats, err := uc.AdminStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), stats.ApprovedClasses)
	assert.Equal(t, int64(3), stats.PendingClasses)
	assert.Equal(t, int64(2), stats.Instructors)
	assert.Equal(t, int64(12), stats.TotalClasses)
	assert.Equal(t, int64(2), stats.TotalEnrolled)
}
