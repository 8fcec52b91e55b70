package mongodb

import (
	"context"
	"errors"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FeedbackRepository is the MongoDB implementation of the feedback store.
type FeedbackRepository struct {
	collection *mongo.Collection
}

func NewFeedbackRepository(collection *mongo.Collection) *FeedbackRepository {
	return &FeedbackRepository{collection: collection}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *entity.Feedback) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return oid, nil
}

func (r *FeedbackRepository) GetByClassID(ctx context.Context, classID primitive.ObjectID) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := r.collection.FindOne(ctx, bson.M{"classId": classID}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &feedback, nil
}
