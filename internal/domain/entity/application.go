package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InstructorApplication is a user's request to become an instructor.
type InstructorApplication struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Experience string             `bson:"experience,omitempty" json:"experience"`
	Submitted  time.Time          `bson:"submitted" json:"submitted"`
}

// Feedback is an admin note attached to a class, usually explaining a
// rejection. The class document points back at it via feedbackId.
type Feedback struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClassID    primitive.ObjectID `bson:"classId" json:"classId"`
	Feedback   string             `bson:"feedback" json:"feedback"`
	Rating     int                `bson:"rating,omitempty" json:"rating,omitempty"`
	AdminEmail string             `bson:"adminEmail,omitempty" json:"adminEmail,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
