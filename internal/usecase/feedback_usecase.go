package usecase

import (
	"context"
	"time"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackUsecase records admin feedback on a class and links it back into
// the class document.
type FeedbackUsecase struct {
	feedbackRepo contract.IFeedbackRepository
	classRepo    contract.IClassRepository
	logger       usecasecontract.IAppLogger
}

func NewFeedbackUsecase(
	feedbackRepo contract.IFeedbackRepository,
	classRepo contract.IClassRepository,
	logger usecasecontract.IAppLogger,
) *FeedbackUsecase {
	return &FeedbackUsecase{feedbackRepo: feedbackRepo, classRepo: classRepo, logger: logger}
}

var _ usecasecontract.IFeedbackUseCase = (*FeedbackUsecase)(nil)

func (uc *FeedbackUsecase) CreateFeedback(ctx context.Context, classID, text string, rating int, adminEmail string) (*entity.Feedback, error) {
	oid, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return nil, entity.ErrInvalidID
	}
	// The class must exist before feedback can point at it.
	if _, err := uc.classRepo.GetClassByID(ctx, classID); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		ClassID:    oid,
		Feedback:   text,
		Rating:     rating,
		AdminEmail: adminEmail,
		CreatedAt:  time.Now(),
	}
	feedbackID, err := uc.feedbackRepo.CreateFeedback(ctx, feedback)
	if err != nil {
		return nil, err
	}
	feedback.ID = feedbackID

	if err := uc.classRepo.LinkFeedback(ctx, oid, feedbackID); err != nil {
		uc.logger.Errorf("failed to link feedback %s into class %s: %v", feedbackID.Hex(), classID, err)
		return nil, err
	}
	return feedback, nil
}
