package mongodb

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository is the MongoDB implementation of the payment store.
// Payment records are append-only.
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(collection *mongo.Collection) *PaymentRepository {
	return &PaymentRepository{collection: collection}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, email string) ([]entity.Payment, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []entity.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
