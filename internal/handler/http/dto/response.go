package dto

import "time"

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the envelope for failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse carries a bare message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TokenUser echoes the identity a credential was signed for.
type TokenUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// TokenResponse returns a freshly signed credential.
type TokenResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    TokenUser `json:"user"`
}

// ClassListResponse wraps an instructor's class listing.
type ClassListResponse struct {
	Classes    interface{} `json:"classes"`
	Total      int         `json:"total"`
	Instructor string      `json:"instructor,omitempty"`
}

// PaymentIntentResponse returns the gateway client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// HealthResponse reports store connectivity.
type HealthResponse struct {
	Success   bool      `json:"success"`
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}
