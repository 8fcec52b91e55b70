package jwt

import (
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/usecase"
)

// TokenServiceAdapter adapts JWTManager to the usecase.TokenService interface.
type TokenServiceAdapter struct {
	mgr *JWTManager
}

// NewTokenService creates a usecase.TokenService from JWTManager.
func NewTokenService(mgr *JWTManager) usecase.TokenService {
	return &TokenServiceAdapter{mgr: mgr}
}

// IssueToken signs a credential for the given identity claims.
func (a *TokenServiceAdapter) IssueToken(email, name, role string) (string, error) {
	return a.mgr.GenerateToken(email, name, role)
}

// VerifyToken validates a credential and returns its claims.
func (a *TokenServiceAdapter) VerifyToken(token string) (*entity.Claims, error) {
	return a.mgr.VerifyToken(token)
}
