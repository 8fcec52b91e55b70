package mongodb

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartRepository is the MongoDB implementation of the cart store. The
// collection carries a unique compound index on (classId, userMail) so a
// lost add-to-cart race surfaces as a duplicate-key error instead of a
// second row.
type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(collection *mongo.Collection) *CartRepository {
	return &CartRepository{collection: collection}
}

// EnsureIndexes creates the unique (classId, userMail) index. Called once
// at startup.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "classId", Value: 1}, {Key: "userMail", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *CartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrAlreadyInCart
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *CartRepository) GetItem(ctx context.Context, classID, userMail string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.collection.FindOne(ctx, bson.M{"classId": classID, "userMail": userMail}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userMail string) ([]entity.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userMail": userMail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []entity.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, id string) error {
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

// RemoveItems clears the user's cart rows for the given class ids after
// checkout.
func (r *CartRepository) RemoveItems(ctx context.Context, userMail string, classIDs []string) error {
	if len(classIDs) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{
		"userMail": userMail,
		"classId":  bson.M{"$in": classIDs},
	})
	return err
}
