package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// ApplicationUsecase handles instructor applications.
type ApplicationUsecase struct {
	applicationRepo contract.IApplicationRepository
	validator       usecasecontract.IValidator
}

func NewApplicationUsecase(
	applicationRepo contract.IApplicationRepository,
	validator usecasecontract.IValidator,
) *ApplicationUsecase {
	return &ApplicationUsecase{applicationRepo: applicationRepo, validator: validator}
}

var _ usecasecontract.IApplicationUseCase = (*ApplicationUsecase)(nil)

func (uc *ApplicationUsecase) Apply(ctx context.Context, application *entity.InstructorApplication) (*entity.InstructorApplication, error) {
	if err := uc.validator.ValidateEmail(application.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", entity.ErrValidation)
	}
	application.Submitted = time.Now()
	if err := uc.applicationRepo.CreateApplication(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (uc *ApplicationUsecase) GetApplication(ctx context.Context, email string) (*entity.InstructorApplication, error) {
	return uc.applicationRepo.GetByEmail(ctx, email)
}

func (uc *ApplicationUsecase) ListApplications(ctx context.Context) ([]entity.InstructorApplication, error) {
	return uc.applicationRepo.ListApplications(ctx)
}
