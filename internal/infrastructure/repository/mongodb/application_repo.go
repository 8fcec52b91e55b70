package mongodb

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationRepository is the MongoDB implementation of the instructor
// application store.
type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(collection *mongo.Collection) *ApplicationRepository {
	return &ApplicationRepository{collection: collection}
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, application *entity.InstructorApplication) error {
	result, err := r.collection.InsertOne(ctx, application)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		application.ID = oid
	}
	return nil
}

func (r *ApplicationRepository) GetByEmail(ctx context.Context, email string) (*entity.InstructorApplication, error) {
	var application entity.InstructorApplication
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&application)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]entity.InstructorApplication, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	applications := []entity.InstructorApplication{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}
