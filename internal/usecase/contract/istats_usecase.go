package usecasecontract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// AdminStats are the aggregate counts behind the admin dashboard.
type AdminStats struct {
	ApprovedClasses int64 `json:"approvedClasses"`
	PendingClasses  int64 `json:"pendingClasses"`
	Instructors     int64 `json:"instructors"`
	TotalClasses    int64 `json:"totalClasses"`
	TotalEnrolled   int64 `json:"totalEnrolled"`
}

type IStatsUseCase interface {
	AdminStats(ctx context.Context) (*AdminStats, error)
}

// IApplicationUseCase handles instructor applications.
type IApplicationUseCase interface {
	Apply(ctx context.Context, application *entity.InstructorApplication) (*entity.InstructorApplication, error)
	GetApplication(ctx context.Context, email string) (*entity.InstructorApplication, error)
	ListApplications(ctx context.Context) ([]entity.InstructorApplication, error)
}

// IFeedbackUseCase records admin feedback and links it into the class.
type IFeedbackUseCase interface {
	CreateFeedback(ctx context.Context, classID, text string, rating int, adminEmail string) (*entity.Feedback, error)
}
