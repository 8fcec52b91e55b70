package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// ClassUsecase governs the course approval lifecycle: pending on submit,
// admin-driven transitions, and forced re-review on edit.
type ClassUsecase struct {
	classRepo contract.IClassRepository
	logger    usecasecontract.IAppLogger
}

func NewClassUsecase(classRepo contract.IClassRepository, logger usecasecontract.IAppLogger) *ClassUsecase {
	return &ClassUsecase{classRepo: classRepo, logger: logger}
}

var _ usecasecontract.IClassUseCase = (*ClassUsecase)(nil)

// parseSeats coerces the submitted seat count. Fails closed on non-numeric
// input instead of storing garbage.
func parseSeats(raw string) (int, error) {
	seats, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: availableSeats must be a number", entity.ErrValidation)
	}
	if seats < 0 {
		return 0, fmt.Errorf("%w: availableSeats must not be negative", entity.ErrValidation)
	}
	return seats, nil
}

// parsePrice coerces the submitted price, rejecting NaN and infinities.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price must be a finite number", entity.ErrValidation)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", entity.ErrValidation)
	}
	return price, nil
}

// Submit creates a class in the pending state with no enrollments.
func (uc *ClassUsecase) Submit(ctx context.Context, sub usecasecontract.ClassSubmission) (*entity.Class, error) {
	seats, err := parseSeats(sub.AvailableSeats)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(sub.Price)
	if err != nil {
		return nil, err
	}

	class := &entity.Class{
		Name:            sub.Name,
		Image:           sub.Image,
		InstructorName:  sub.InstructorName,
		InstructorEmail: sub.InstructorEmail,
		AvailableSeats:  seats,
		Price:           price,
		Description:     sub.Description,
		Category:        sub.Category,
		Prerequisites:   sub.Prerequisites,
		Objectives:      sub.Objectives,
		TargetAudience:  sub.TargetAudience,
		Modules:         sub.Modules,
		TotalDuration:   sub.TotalDuration,
		TotalLessons:    sub.TotalLessons,
		Level:           sub.Level,
		Status:          entity.ClassStatusPending,
		Submitted:       time.Now(),
		TotalEnrolled:   0,
	}

	id, err := uc.classRepo.CreateClass(ctx, class)
	if err != nil {
		uc.logger.Errorf("failed to create class %q: %v", sub.Name, err)
		return nil, err
	}
	class.ID = id
	return class, nil
}

// ChangeStatus moves a class between the enumerated workflow states,
// optionally attaching a reason (used for rejection explanations).
func (uc *ClassUsecase) ChangeStatus(ctx context.Context, id, status, reason string) error {
	if !entity.ValidClassStatus(status) {
		return fmt.Errorf("%w: %q", entity.ErrInvalidStatus, status)
	}
	if err := uc.classRepo.SetStatus(ctx, id, entity.ClassStatus(status), reason); err != nil {
		return err
	}
	uc.logger.Infof("class %s moved to %s", id, status)
	return nil
}

// Edit overwrites the editable fields and unconditionally forces the class
// back to pending, regardless of its prior state.
func (uc *ClassUsecase) Edit(ctx context.Context, id string, edit usecasecontract.ClassEdit) error {
	seats, err := parseSeats(edit.AvailableSeats)
	if err != nil {
		return err
	}
	price, err := parsePrice(edit.Price)
	if err != nil {
		return err
	}

	update := &entity.ClassUpdate{
		Status:         entity.ClassStatusPending,
		Name:           edit.Name,
		Image:          edit.Image,
		Description:    edit.Description,
		Price:          price,
		AvailableSeats: seats,
		Category:       edit.Category,
		Prerequisites:  edit.Prerequisites,
		Objectives:     edit.Objectives,
		TargetAudience: edit.TargetAudience,
		Modules:        edit.Modules,
		TotalDuration:  edit.TotalDuration,
		TotalLessons:   edit.TotalLessons,
		Level:          edit.Level,
	}
	return uc.classRepo.UpdateClass(ctx, id, update)
}

func (uc *ClassUsecase) ApprovedCatalog(ctx context.Context) ([]entity.Class, error) {
	return uc.classRepo.ListByStatus(ctx, entity.ClassStatusApproved)
}

func (uc *ClassUsecase) AllClasses(ctx context.Context) ([]entity.Class, error) {
	return uc.classRepo.ListAll(ctx)
}

func (uc *ClassUsecase) GetClass(ctx context.Context, id string) (*entity.Class, error) {
	return uc.classRepo.GetClassByID(ctx, id)
}

// InstructorClasses lists an instructor's classes. A non-empty status must
// be one of the enumerated workflow states.
func (uc *ClassUsecase) InstructorClasses(ctx context.Context, email, status string) ([]entity.Class, error) {
	if status != "" && !entity.ValidClassStatus(status) {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidStatus, status)
	}
	return uc.classRepo.ListByInstructor(ctx, email, entity.ClassStatus(status))
}
