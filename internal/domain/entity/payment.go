package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout transaction. Immutable after insert.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserEmail     string               `bson:"userEmail" json:"userEmail"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	Amount        float64              `bson:"amount" json:"amount"`
	ClassesID     []primitive.ObjectID `bson:"classesId" json:"classesId"`
	Date          time.Time            `bson:"date" json:"date"`
}

// EnrollmentStatus mirrors the status field stored on enrollment records.
type EnrollmentStatus string

const EnrollmentStatusCompleted EnrollmentStatus = "completed"

// Enrollment links a user to the batch of classes paid for in one checkout.
type Enrollment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserEmail     string               `bson:"userEmail" json:"userEmail"`
	ClassesID     []primitive.ObjectID `bson:"classesId" json:"classesId"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	EnrolledDate  time.Time            `bson:"enrolledDate" json:"enrolledDate"`
	Status        EnrollmentStatus     `bson:"status" json:"status"`
}

// EnrolledClass is one row of the enrolled-classes aggregation: the class
// document joined in from the classes collection.
type EnrolledClass struct {
	ClassID primitive.ObjectID `bson:"classId" json:"classId"`
	Class   Class              `bson:"classes" json:"classes"`
}
