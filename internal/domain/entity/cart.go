package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a class a user has put in their cart but not paid for yet.
// At most one item per (classId, userMail) pair; the cart collection carries
// a unique compound index on those two fields.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClassID   string             `bson:"classId" json:"classId"`
	UserMail  string             `bson:"userMail" json:"userMail"`
	Submitted time.Time          `bson:"submitted" json:"submitted"`
}
