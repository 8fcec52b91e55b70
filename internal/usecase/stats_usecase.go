package usecase

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// StatsUsecase computes the aggregate counts behind the admin dashboard.
type StatsUsecase struct {
	classRepo      contract.IClassRepository
	userRepo       contract.IUserRepository
	enrollmentRepo contract.IEnrollmentRepository
}

func NewStatsUsecase(
	classRepo contract.IClassRepository,
	userRepo contract.IUserRepository,
	enrollmentRepo contract.IEnrollmentRepository,
) *StatsUsecase {
	return &StatsUsecase{
		classRepo:      classRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

var _ usecasecontract.IStatsUseCase = (*StatsUsecase)(nil)

func (uc *StatsUsecase) AdminStats(ctx context.Context) (*usecasecontract.AdminStats, error) {
	approved, err := uc.classRepo.CountByStatus(ctx, entity.ClassStatusApproved)
	if err != nil {
		return nil, err
	}
	pending, err := uc.classRepo.CountByStatus(ctx, entity.ClassStatusPending)
	if err != nil {
		return nil, err
	}
	instructors, err := uc.userRepo.CountByRole(ctx, entity.UserRoleInstructor)
	if err != nil {
		return nil, err
	}
	total, err := uc.classRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	enrolled, err := uc.enrollmentRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &usecasecontract.AdminStats{
		ApprovedClasses: approved,
		PendingClasses:  pending,
		Instructors:     instructors,
		TotalClasses:    total,
		TotalEnrolled:   enrolled,
	}, nil
}
