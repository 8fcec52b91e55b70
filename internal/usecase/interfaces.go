package usecase

import (
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// TokenService defines the interface for bearer credential operations.
type TokenService interface {
	IssueToken(email, name, role string) (string, error)
	VerifyToken(token string) (*entity.Claims, error)
}
