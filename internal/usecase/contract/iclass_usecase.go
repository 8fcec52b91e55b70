package usecasecontract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// ClassSubmission carries a new-class request. Seats and price arrive as
// strings from the form and are coerced by the usecase; non-numeric values
// fail validation.
type ClassSubmission struct {
	Name            string
	Image           string
	InstructorName  string
	InstructorEmail string
	AvailableSeats  string
	Price           string
	Description     string
	Category        string
	Prerequisites   string
	Objectives      string
	TargetAudience  string
	Modules         []entity.Module
	TotalDuration   string
	TotalLessons    int
	Level           string
}

// ClassEdit carries the editable fields of an update-class request.
type ClassEdit struct {
	Name           string
	Image          string
	Description    string
	Price          string
	AvailableSeats string
	Category       string
	Prerequisites  string
	Objectives     string
	TargetAudience string
	Modules        []entity.Module
	TotalDuration  string
	TotalLessons   int
	Level          string
}

// IClassUseCase governs the course approval lifecycle.
type IClassUseCase interface {
	// Submit creates a class in the pending state with no enrollments.
	Submit(ctx context.Context, sub ClassSubmission) (*entity.Class, error)
	// ChangeStatus moves a class between pending, approved and rejected.
	ChangeStatus(ctx context.Context, id, status, reason string) error
	// Edit overwrites the editable fields and forces the class back to
	// pending for re-review.
	Edit(ctx context.Context, id string, edit ClassEdit) error
	// ApprovedCatalog lists the public catalog of approved classes.
	ApprovedCatalog(ctx context.Context) ([]entity.Class, error)
	// AllClasses lists every class for the admin manage view.
	AllClasses(ctx context.Context) ([]entity.Class, error)
	GetClass(ctx context.Context, id string) (*entity.Class, error)
	// InstructorClasses lists an instructor's classes, optionally narrowed
	// to one workflow state.
	InstructorClasses(ctx context.Context, email, status string) ([]entity.Class, error)
}
