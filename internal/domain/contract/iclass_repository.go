package contract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IClassRepository interface {
	CreateClass(ctx context.Context, class *entity.Class) (primitive.ObjectID, error)
	// GetClassByID retrieves a single class by its hex id.
	GetClassByID(ctx context.Context, id string) (*entity.Class, error)
	// ListByStatus returns classes in the given workflow state.
	ListByStatus(ctx context.Context, status entity.ClassStatus) ([]entity.Class, error)
	// ListAll returns every class regardless of status.
	ListAll(ctx context.Context) ([]entity.Class, error)
	// ListByInstructor returns the instructor's classes; status narrows the
	// result when non-empty.
	ListByInstructor(ctx context.Context, email string, status entity.ClassStatus) ([]entity.Class, error)
	// ListByIDs returns the classes matching the given object ids.
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Class, error)
	// SetStatus moves a class to the given workflow state, optionally
	// attaching a reason.
	SetStatus(ctx context.Context, id string, status entity.ClassStatus, reason string) error
	// UpdateClass overwrites the editable fields and resets status to pending.
	UpdateClass(ctx context.Context, id string, update *entity.ClassUpdate) error
	// ApplyEnrollment increments totalEnrolled and decrements availableSeats
	// together on one class.
	ApplyEnrollment(ctx context.Context, id primitive.ObjectID) error
	// LinkFeedback points a class at its feedback record.
	LinkFeedback(ctx context.Context, classID, feedbackID primitive.ObjectID) error
	// CountByStatus counts classes in the given workflow state.
	CountByStatus(ctx context.Context, status entity.ClassStatus) (int64, error)
	// CountAll counts every class.
	CountAll(ctx context.Context) (int64, error)
}
