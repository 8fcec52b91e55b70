package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// UserUsecase implements user account operations.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

func NewUserUsecase(
	userRepo contract.IUserRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		validator: validator,
		logger:    logger,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// CreateUser stores a new user record. Role is left as submitted; a missing
// role resolves to "user" on read.
func (uc *UserUsecase) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(user.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", entity.ErrValidation)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user %s: %v", user.Email, err)
		return nil, err
	}
	return user, nil
}

// GetProfile fetches a user by email with the role defaulted to "user" when
// the stored record has none.
func (uc *UserUsecase) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	user.Role = user.EffectiveRole()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	return user, nil
}

func (uc *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return uc.userRepo.ListUsers(ctx)
}

func (uc *UserUsecase) ListInstructors(ctx context.Context) ([]entity.User, error) {
	return uc.userRepo.ListByRole(ctx, entity.UserRoleInstructor)
}

func (uc *UserUsecase) UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	updated, err := uc.userRepo.UpdateUser(ctx, id, user)
	if err != nil {
		uc.logger.Errorf("failed to update user %s: %v", id, err)
		return nil, err
	}
	return updated, nil
}

func (uc *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	return uc.userRepo.DeleteUser(ctx, id)
}

// SetRole is the emergency role override: it rewrites the role field
// directly, bypassing the application workflow.
func (uc *UserUsecase) SetRole(ctx context.Context, id string, role string) error {
	switch entity.UserRole(role) {
	case entity.UserRoleAdmin, entity.UserRoleInstructor, entity.UserRoleUser:
	default:
		return fmt.Errorf("%w: unknown role %q", entity.ErrValidation, role)
	}
	uc.logger.Warnf("role override: user %s set to %s", id, role)
	return uc.userRepo.SetRole(ctx, id, entity.UserRole(role))
}
