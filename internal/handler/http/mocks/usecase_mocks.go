package mocks

import (
	"context"
	"errors"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthUsecase is a mock implementation of the auth usecase.
type MockAuthUsecase struct {
	ShouldFailIssueToken bool

	MockToken string
	MockRole  string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockToken: "mock_token",
		MockRole:  "user",
	}
}

func (m *MockAuthUsecase) IssueToken(ctx context.Context, email, name, role string) (string, string, error) {
	if m.ShouldFailIssueToken {
		return "", "", errors.New("token issuance failed")
	}
	if role == "" {
		role = m.MockRole
	}
	return m.MockToken, role, nil
}

// MockUserUsecase is a mock implementation of the user usecase.
type MockUserUsecase struct {
	ShouldFailCreateUser bool
	ShouldFailGetProfile bool
	ShouldFailList       bool
	ShouldFailUpdate     bool
	ShouldFailDelete     bool
	ShouldFailSetRole    bool

	MockUser entity.User
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    primitive.NewObjectID(),
			Name:  "Test User",
			Email: "test@example.com",
			Role:  entity.UserRoleUser,
		},
	}
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if m.ShouldFailCreateUser {
		return nil, errors.New("user creation failed")
	}
	return user, nil
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	if m.ShouldFailGetProfile {
		return nil, entity.ErrNotFound
	}
	user := m.MockUser
	user.Role = user.EffectiveRole()
	return &user, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return []entity.User{m.MockUser}, nil
}

func (m *MockUserUsecase) ListInstructors(ctx context.Context) ([]entity.User, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return []entity.User{}, nil
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	if m.ShouldFailUpdate {
		return nil, entity.ErrNotFound
	}
	updated := m.MockUser
	updated.Name = user.Name
	return &updated, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id string) error {
	if m.ShouldFailDelete {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockUserUsecase) SetRole(ctx context.Context, id string, role string) error {
	if m.ShouldFailSetRole {
		return errors.New("role override failed")
	}
	return nil
}

// MockClassUsecase is a mock implementation of the class usecase.
type MockClassUsecase struct {
	ShouldFailSubmit       bool
	ShouldFailChangeStatus bool
	ChangeStatusErr        error
	ShouldFailEdit         bool
	EditErr                error
	ShouldFailGet          bool

	MockClass entity.Class
}

var _ usecasecontract.IClassUseCase = (*MockClassUsecase)(nil)

func NewMockClassUsecase() *MockClassUsecase {
	return &MockClassUsecase{
		MockClass: entity.Class{
			ID:              primitive.NewObjectID(),
			Name:            "Intro to Gamelan",
			InstructorName:  "Test Instructor",
			InstructorEmail: "instructor@example.com",
			AvailableSeats:  10,
			Price:           49.99,
			Status:          entity.ClassStatusPending,
		},
	}
}

func (m *MockClassUsecase) Submit(ctx context.Context, sub usecasecontract.ClassSubmission) (*entity.Class, error) {
	if m.ShouldFailSubmit {
		return nil, entity.ErrValidation
	}
	return &m.MockClass, nil
}

func (m *MockClassUsecase) ChangeStatus(ctx context.Context, id, status, reason string) error {
	if m.ShouldFailChangeStatus {
		if m.ChangeStatusErr != nil {
			return m.ChangeStatusErr
		}
		return entity.ErrInvalidStatus
	}
	return nil
}

func (m *MockClassUsecase) Edit(ctx context.Context, id string, edit usecasecontract.ClassEdit) error {
	if m.ShouldFailEdit {
		if m.EditErr != nil {
			return m.EditErr
		}
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockClassUsecase) ApprovedCatalog(ctx context.Context) ([]entity.Class, error) {
	if m.ShouldFailGet {
		return nil, errors.New("list failed")
	}
	return []entity.Class{m.MockClass}, nil
}

func (m *MockClassUsecase) AllClasses(ctx context.Context) ([]entity.Class, error) {
	return []entity.Class{m.MockClass}, nil
}

func (m *MockClassUsecase) GetClass(ctx context.Context, id string) (*entity.Class, error) {
	if m.ShouldFailGet {
		return nil, entity.ErrNotFound
	}
	return &m.MockClass, nil
}

func (m *MockClassUsecase) InstructorClasses(ctx context.Context, email, status string) ([]entity.Class, error) {
	if m.ShouldFailGet {
		return nil, errors.New("list failed")
	}
	return []entity.Class{m.MockClass}, nil
}

// MockCartUsecase is a mock implementation of the cart usecase.
type MockCartUsecase struct {
	ShouldFailAdd bool
	AddErr        error

	MockItem entity.CartItem
	Added    int
}

var _ usecasecontract.ICartUseCase = (*MockCartUsecase)(nil)

func NewMockCartUsecase() *MockCartUsecase {
	return &MockCartUsecase{
		MockItem: entity.CartItem{
			ID:       primitive.NewObjectID(),
			ClassID:  primitive.NewObjectID().Hex(),
			UserMail: "test@example.com",
		},
	}
}

func (m *MockCartUsecase) AddToCart(ctx context.Context, classID, userMail string) (*entity.CartItem, error) {
	if m.ShouldFailAdd {
		if m.AddErr != nil {
			return nil, m.AddErr
		}
		return nil, entity.ErrAlreadyInCart
	}
	m.Added++
	return &m.MockItem, nil
}

func (m *MockCartUsecase) CartClasses(ctx context.Context, userMail string) ([]entity.Class, error) {
	return []entity.Class{}, nil
}

func (m *MockCartUsecase) RemoveFromCart(ctx context.Context, id string) error {
	return nil
}

// MockCheckoutUsecase is a mock implementation of the checkout usecase.
type MockCheckoutUsecase struct {
	ShouldFailIntent bool
	ShouldFailEnroll bool
	EnrollErr        error

	MockSecret     string
	MockEnrollment entity.Enrollment
	MockPayments   []entity.Payment
}

var _ usecasecontract.ICheckoutUseCase = (*MockCheckoutUsecase)(nil)

func NewMockCheckoutUsecase() *MockCheckoutUsecase {
	return &MockCheckoutUsecase{
		MockSecret: "pi_mock_secret",
		MockEnrollment: entity.Enrollment{
			ID:            primitive.NewObjectID(),
			UserEmail:     "test@example.com",
			TransactionID: "txn_mock",
			Status:        entity.EnrollmentStatusCompleted,
		},
	}
}

func (m *MockCheckoutUsecase) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	if m.ShouldFailIntent {
		return "", errors.New("gateway unavailable")
	}
	return m.MockSecret, nil
}

func (m *MockCheckoutUsecase) Enroll(ctx context.Context, info usecasecontract.CheckoutInfo) (*entity.Enrollment, error) {
	if m.ShouldFailEnroll {
		if m.EnrollErr != nil {
			return nil, m.EnrollErr
		}
		return nil, errors.New("enrollment failed")
	}
	return &m.MockEnrollment, nil
}

func (m *MockCheckoutUsecase) EnrolledClasses(ctx context.Context, email string) ([]entity.EnrolledClass, error) {
	return []entity.EnrolledClass{}, nil
}

func (m *MockCheckoutUsecase) PaymentHistory(ctx context.Context, email string) ([]entity.Payment, error) {
	return m.MockPayments, nil
}
