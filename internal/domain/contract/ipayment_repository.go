package contract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

type IPaymentRepository interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	// ListByUser returns a user's payment history, newest first.
	ListByUser(ctx context.Context, email string) ([]entity.Payment, error)
}

type IEnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error
	// EnrolledClasses joins a user's enrollments against the classes
	// collection, one row per enrolled class.
	EnrolledClasses(ctx context.Context, email string) ([]entity.EnrolledClass, error)
	// CountAll counts every enrollment record.
	CountAll(ctx context.Context) (int64, error)
}
