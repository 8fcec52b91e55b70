package dto

import (
	"encoding/json"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// Number accepts either a JSON number or a numeric string, preserving the
// raw text for the usecase layer to coerce. Class submissions arrive from
// forms with seats as a number and price as a string, so both shapes occur.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(data)
	return nil
}

// SetTokenRequest asks for a signed bearer credential.
type SetTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// NewUserRequest creates a user record.
type NewUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
	Address  string `json:"address"`
	About    string `json:"about"`
	Skills   string `json:"skills"`
	Phone    string `json:"phone"`
}

// UpdateUserRequest carries the admin-editable profile fields. A non-empty
// role triggers the emergency role override.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
	Address  string `json:"address"`
	About    string `json:"about"`
	Skills   string `json:"skills"`
	Phone    string `json:"phone"`
}

// NewClassRequest submits a course for review.
type NewClassRequest struct {
	Name            string          `json:"name" binding:"required"`
	Image           string          `json:"image"`
	InstructorName  string          `json:"instructorName" binding:"required"`
	InstructorEmail string          `json:"instructorEmail" binding:"required,email"`
	AvailableSeats  Number          `json:"availableSeats" binding:"required"`
	Price           Number          `json:"price" binding:"required"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Prerequisites   string          `json:"prerequisites"`
	Objectives      string          `json:"objectives"`
	TargetAudience  string          `json:"targetAudience"`
	Modules         []entity.Module `json:"modules"`
	TotalDuration   string          `json:"totalDuration"`
	TotalLessons    int             `json:"totalLessons"`
	Level           string          `json:"level"`
}

// UpdateClassRequest edits an existing course; applying it always sends the
// course back to review.
type UpdateClassRequest struct {
	Name           string          `json:"name" binding:"required"`
	Image          string          `json:"image"`
	Description    string          `json:"description"`
	Price          Number          `json:"price" binding:"required"`
	AvailableSeats Number          `json:"availableSeats" binding:"required"`
	Category       string          `json:"category"`
	Prerequisites  string          `json:"prerequisites"`
	Objectives     string          `json:"objectives"`
	TargetAudience string          `json:"targetAudience"`
	Modules        []entity.Module `json:"modules"`
	TotalDuration  string          `json:"totalDuration"`
	TotalLessons   int             `json:"totalLessons"`
	Level          string          `json:"level"`
}

// ChangeStatusRequest moves a course between workflow states.
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// AddToCartRequest puts a class in a user's cart.
type AddToCartRequest struct {
	ClassID  string `json:"classId" binding:"required"`
	UserMail string `json:"userMail"`
}

// PaymentIntentRequest asks the gateway for a client secret.
type PaymentIntentRequest struct {
	Price Number `json:"price" binding:"required"`
}

// PaymentInfoRequest is the checkout payload posted after the client-side
// payment completes.
type PaymentInfoRequest struct {
	UserEmail     string   `json:"userEmail"`
	TransactionID string   `json:"transactionId"`
	Amount        float64  `json:"amount"`
	ClassesID     []string `json:"classesId" binding:"required,min=1"`
}

// ApplyInstructorRequest is a user's instructor application.
type ApplyInstructorRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Experience string `json:"experience"`
}

// FeedbackRequest records admin feedback on a class.
type FeedbackRequest struct {
	ClassID  string `json:"classId" binding:"required"`
	Feedback string `json:"feedback" binding:"required"`
	Rating   int    `json:"rating"`
}
