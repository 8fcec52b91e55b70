package contract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IApplicationRepository interface {
	CreateApplication(ctx context.Context, application *entity.InstructorApplication) error
	// GetByEmail returns the application submitted under the given email.
	GetByEmail(ctx context.Context, email string) (*entity.InstructorApplication, error)
	// ListApplications returns every pending application.
	ListApplications(ctx context.Context) ([]entity.InstructorApplication, error)
}

type IFeedbackRepository interface {
	// CreateFeedback inserts a feedback record and returns its id.
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) (primitive.ObjectID, error)
	// GetByClassID returns the feedback attached to a class.
	GetByClassID(ctx context.Context, classID primitive.ObjectID) (*entity.Feedback, error)
}
