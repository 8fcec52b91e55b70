package usecasecontract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// CheckoutInfo is the payload of a completed client-side payment.
type CheckoutInfo struct {
	UserEmail     string
	TransactionID string
	Amount        float64
	ClassesID     []string
}

// ICheckoutUseCase converts cart items into paid enrollments.
type ICheckoutUseCase interface {
	// CreatePaymentIntent delegates to the payment gateway for the given
	// price in dollars and returns the client secret.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
	// Enroll runs the checkout: per-class seat accounting, payment record,
	// cart cleanup and one enrollment record over the whole batch.
	Enroll(ctx context.Context, info CheckoutInfo) (*entity.Enrollment, error)
	// EnrolledClasses lists the classes a user has enrolled in.
	EnrolledClasses(ctx context.Context, email string) ([]entity.EnrolledClass, error)
	// PaymentHistory lists a user's payment records, newest first.
	PaymentHistory(ctx context.Context, email string) ([]entity.Payment, error)
}
