package mongodb

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnrollmentRepository is the MongoDB implementation of the enrollment
// store.
type EnrollmentRepository struct {
	collection *mongo.Collection
}

func NewEnrollmentRepository(collection *mongo.Collection) *EnrollmentRepository {
	return &EnrollmentRepository{collection: collection}
}

func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	result, err := r.collection.InsertOne(ctx, enrollment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		enrollment.ID = oid
	}
	return nil
}

// EnrolledClasses joins a user's enrollment batches against the classes
// collection, producing one row per enrolled class.
func (r *EnrollmentRepository) EnrolledClasses(ctx context.Context, email string) ([]entity.EnrolledClass, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userEmail": email}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "classes",
			"localField":   "classesId",
			"foreignField": "_id",
			"as":           "classes",
		}}},
		bson.D{{Key: "$unwind", Value: "$classes"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":     0,
			"classId": "$classes._id",
			"classes": 1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []entity.EnrolledClass{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EnrollmentRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
