package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStatus represents where a class sits in the approval workflow.
type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusRejected ClassStatus = "rejected"
)

// ValidClassStatus reports whether s is one of the enumerated workflow states.
func ValidClassStatus(s string) bool {
	switch ClassStatus(s) {
	case ClassStatusPending, ClassStatusApproved, ClassStatusRejected:
		return true
	}
	return false
}

// Module is one unit of a class curriculum.
type Module struct {
	Title    string `bson:"title" json:"title"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
}

// Class represents a course offering submitted by an instructor. New
// submissions always start pending; admins move them between pending,
// approved and rejected.
type Class struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name            string              `bson:"name" json:"name"`
	Image           string              `bson:"image,omitempty" json:"image"`
	InstructorName  string              `bson:"instructorName" json:"instructorName"`
	InstructorEmail string              `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats  int                 `bson:"availableSeats" json:"availableSeats"`
	Price           float64             `bson:"price" json:"price"`
	Description     string              `bson:"description,omitempty" json:"description"`
	Category        string              `bson:"category,omitempty" json:"category"`
	Prerequisites   string              `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Objectives      string              `bson:"objectives,omitempty" json:"objectives,omitempty"`
	TargetAudience  string              `bson:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	Modules         []Module            `bson:"modules,omitempty" json:"modules,omitempty"`
	TotalDuration   string              `bson:"totalDuration,omitempty" json:"totalDuration,omitempty"`
	TotalLessons    int                 `bson:"totalLessons,omitempty" json:"totalLessons,omitempty"`
	Level           string              `bson:"level,omitempty" json:"level,omitempty"`
	Status          ClassStatus         `bson:"status" json:"status"`
	Reason          string              `bson:"reason,omitempty" json:"reason,omitempty"`
	Submitted       time.Time           `bson:"submitted" json:"submitted"`
	TotalEnrolled   int                 `bson:"totalEnrolled" json:"totalEnrolled"`
	FeedbackID      *primitive.ObjectID `bson:"feedbackId,omitempty" json:"feedbackId,omitempty"`
}

// ClassUpdate holds the instructor-editable fields of a class plus the
// workflow state the update lands in. The usecase always sets Status to
// pending for re-review.
type ClassUpdate struct {
	Status         ClassStatus `bson:"status" json:"status"`
	Name           string      `bson:"name" json:"name"`
	Image          string      `bson:"image,omitempty" json:"image"`
	Description    string      `bson:"description,omitempty" json:"description"`
	Price          float64     `bson:"price" json:"price"`
	AvailableSeats int         `bson:"availableSeats" json:"availableSeats"`
	Category       string      `bson:"category,omitempty" json:"category"`
	Prerequisites  string      `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Objectives     string      `bson:"objectives,omitempty" json:"objectives,omitempty"`
	TargetAudience string      `bson:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	Modules        []Module    `bson:"modules,omitempty" json:"modules,omitempty"`
	TotalDuration  string      `bson:"totalDuration,omitempty" json:"totalDuration,omitempty"`
	TotalLessons   int         `bson:"totalLessons,omitempty" json:"totalLessons,omitempty"`
	Level          string      `bson:"level,omitempty" json:"level,omitempty"`
}
