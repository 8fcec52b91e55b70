package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies HS256 bearer tokens carrying identity
// claims with a fixed expiry.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), expiry: expiry}
}

// GenerateToken issues a signed credential encoding {email, name, role}.
func (m *JWTManager) GenerateToken(email, name, role string) (string, error) {
	now := time.Now()
	claims := &entity.Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken validates a credential and recovers its claims. Signature and
// expiry failures both surface as ErrInvalidToken.
func (m *JWTManager) VerifyToken(tokenStr string) (*entity.Claims, error) {
	claims := &entity.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
