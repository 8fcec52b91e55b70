package mongodb

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoUserRepository) ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
	return r.list(ctx, bson.M{"role": role})
}

func (r *MongoUserRepository) list(ctx context.Context, filter bson.M) ([]entity.User, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser overwrites the profile fields of the user with the given id
// and returns the updated record.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"name":     user.Name,
		"photoUrl": user.PhotoURL,
		"address":  user.Address,
		"about":    user.About,
		"skills":   user.Skills,
		"phone":    user.Phone,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entity.ErrNotFound
	}

	var updated entity.User
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoUserRepository) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrInvalidID
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrInvalidID
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role})
}
