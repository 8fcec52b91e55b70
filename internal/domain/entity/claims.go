package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims carried by a signed bearer token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
