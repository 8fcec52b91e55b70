package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// CheckoutUsecase converts cart items into paid enrollments.
//
// Enroll is a multi-step operation with no transaction spanning the steps:
// seat accounting, the payment record, cart cleanup and the enrollment
// record are applied independently, and a failure aborts the remaining
// steps without rolling back the completed ones.
type CheckoutUsecase struct {
	classRepo      contract.IClassRepository
	cartRepo       contract.ICartRepository
	paymentRepo    contract.IPaymentRepository
	enrollmentRepo contract.IEnrollmentRepository
	gateway        contract.IPaymentGateway
	logger         usecasecontract.IAppLogger
}

func NewCheckoutUsecase(
	classRepo contract.IClassRepository,
	cartRepo contract.ICartRepository,
	paymentRepo contract.IPaymentRepository,
	enrollmentRepo contract.IEnrollmentRepository,
	gateway contract.IPaymentGateway,
	logger usecasecontract.IAppLogger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		classRepo:      classRepo,
		cartRepo:       cartRepo,
		paymentRepo:    paymentRepo,
		enrollmentRepo: enrollmentRepo,
		gateway:        gateway,
		logger:         logger,
	}
}

var _ usecasecontract.ICheckoutUseCase = (*CheckoutUsecase)(nil)

// CreatePaymentIntent converts a dollar price to cents and asks the gateway
// for a client secret.
func (uc *CheckoutUsecase) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return "", fmt.Errorf("%w: price must be a positive number", entity.ErrValidation)
	}
	amount := int64(math.Round(price * 100))
	secret, err := uc.gateway.CreatePaymentIntent(ctx, amount)
	if err != nil {
		uc.logger.Errorf("payment intent for %d cents failed: %v", amount, err)
		return "", err
	}
	return secret, nil
}

// Enroll runs the checkout for one or more classes. Seat counters across
// classes are updated concurrently and awaited together; the follow-up
// steps run in order afterwards.
func (uc *CheckoutUsecase) Enroll(ctx context.Context, info usecasecontract.CheckoutInfo) (*entity.Enrollment, error) {
	if len(info.ClassesID) == 0 {
		return nil, fmt.Errorf("%w: no classes to enroll", entity.ErrValidation)
	}

	ids := make([]primitive.ObjectID, 0, len(info.ClassesID))
	for _, hex := range info.ClassesID {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, entity.ErrInvalidID
		}
		ids = append(ids, id)
	}

	transactionID := info.TransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return uc.classRepo.ApplyEnrollment(gctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Errorf("seat accounting failed for transaction %s: %v", transactionID, err)
		return nil, err
	}

	now := time.Now()
	payment := &entity.Payment{
		UserEmail:     info.UserEmail,
		TransactionID: transactionID,
		Amount:        info.Amount,
		ClassesID:     ids,
		Date:          now,
	}
	if err := uc.paymentRepo.CreatePayment(ctx, payment); err != nil {
		uc.logger.Errorf("payment record failed for transaction %s: %v", transactionID, err)
		return nil, err
	}

	if err := uc.cartRepo.RemoveItems(ctx, info.UserEmail, info.ClassesID); err != nil {
		uc.logger.Errorf("cart cleanup failed for transaction %s: %v", transactionID, err)
		return nil, err
	}

	enrollment := &entity.Enrollment{
		UserEmail:     info.UserEmail,
		ClassesID:     ids,
		TransactionID: transactionID,
		EnrolledDate:  now,
		Status:        entity.EnrollmentStatusCompleted,
	}
	if err := uc.enrollmentRepo.CreateEnrollment(ctx, enrollment); err != nil {
		uc.logger.Errorf("enrollment record failed for transaction %s: %v", transactionID, err)
		return nil, err
	}
	return enrollment, nil
}

func (uc *CheckoutUsecase) EnrolledClasses(ctx context.Context, email string) ([]entity.EnrolledClass, error) {
	return uc.enrollmentRepo.EnrolledClasses(ctx, email)
}

func (uc *CheckoutUsecase) PaymentHistory(ctx context.Context, email string) ([]entity.Payment, error) {
	return uc.paymentRepo.ListByUser(ctx, email)
}
