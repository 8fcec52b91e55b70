package validator

import (
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// AppValidator implements the usecase validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase validator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}
