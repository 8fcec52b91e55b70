package mongodb

import (
	"context"
	"errors"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClassRepository is the MongoDB implementation of the class store.
type ClassRepository struct {
	collection *mongo.Collection
}

func NewClassRepository(collection *mongo.Collection) *ClassRepository {
	return &ClassRepository{collection: collection}
}

func (r *ClassRepository) CreateClass(ctx context.Context, class *entity.Class) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, class)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return oid, nil
}

func (r *ClassRepository) GetClassByID(ctx context.Context, id string) (*entity.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.ErrInvalidID
	}
	var class entity.Class
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&class); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) ListByStatus(ctx context.Context, status entity.ClassStatus) ([]entity.Class, error) {
	return r.list(ctx, bson.M{"status": status})
}

func (r *ClassRepository) ListAll(ctx context.Context) ([]entity.Class, error) {
	return r.list(ctx, bson.M{})
}

func (r *ClassRepository) ListByInstructor(ctx context.Context, email string, status entity.ClassStatus) ([]entity.Class, error) {
	filter := bson.M{"instructorEmail": email}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *ClassRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]entity.Class, error) {
	return r.list(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *ClassRepository) list(ctx context.Context, filter bson.M) ([]entity.Class, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	classes := []entity.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// SetStatus moves a class to the given workflow state, attaching a reason
// when one is provided.
func (r *ClassRepository) SetStatus(ctx context.Context, id string, status entity.ClassStatus, reason string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrInvalidID
	}

	set := bson.M{"status": status}
	if reason != "" {
		set["reason"] = reason
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// UpdateClass overwrites the editable fields and the workflow state.
func (r *ClassRepository) UpdateClass(ctx context.Context, id string, update *entity.ClassUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity.ErrInvalidID
	}

	set := bson.M{
		"status":         update.Status,
		"name":           update.Name,
		"image":          update.Image,
		"description":    update.Description,
		"price":          update.Price,
		"availableSeats": update.AvailableSeats,
		"category":       update.Category,
		"prerequisites":  update.Prerequisites,
		"objectives":     update.Objectives,
		"targetAudience": update.TargetAudience,
		"modules":        update.Modules,
		"totalDuration":  update.TotalDuration,
		"totalLessons":   update.TotalLessons,
		"level":          update.Level,
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// ApplyEnrollment updates both enrollment counters of one class in a single
// write: totalEnrolled up, availableSeats down.
func (r *ClassRepository) ApplyEnrollment(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$inc": bson.M{"totalEnrolled": 1, "availableSeats": -1}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ClassRepository) LinkFeedback(ctx context.Context, classID, feedbackID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": classID}, bson.M{"$set": bson.M{"feedbackId": feedbackID}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *ClassRepository) CountByStatus(ctx context.Context, status entity.ClassStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *ClassRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
