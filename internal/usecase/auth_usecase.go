package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// AuthUsecase issues signed bearer credentials for known identities.
type AuthUsecase struct {
	userRepo     contract.IUserRepository
	tokenService TokenService
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

func NewAuthUsecase(
	userRepo contract.IUserRepository,
	tokenService TokenService,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		tokenService: tokenService,
		validator:    validator,
		logger:       logger,
	}
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// IssueToken signs a credential for the given identity. The role is taken
// from the request when present; otherwise it is looked up fresh from the
// user record, defaulting to "user" for unknown accounts.
func (uc *AuthUsecase) IssueToken(ctx context.Context, email, name, role string) (string, string, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return "", "", fmt.Errorf("%w: invalid email", entity.ErrValidation)
	}

	if role == "" {
		user, err := uc.userRepo.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			role = string(user.EffectiveRole())
		case errors.Is(err, entity.ErrNotFound):
			role = string(entity.DefaultRole())
		default:
			uc.logger.Errorf("failed to resolve role for %s: %v", email, err)
			return "", "", err
		}
	}

	token, err := uc.tokenService.IssueToken(email, name, role)
	if err != nil {
		uc.logger.Errorf("failed to sign token for %s: %v", email, err)
		return "", "", err
	}
	return token, role, nil
}
