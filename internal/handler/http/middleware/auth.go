package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	"github.com/mazboy1/frasa-backend/internal/usecase"
)

// ClaimsKey is the gin context key the verified claims are stored under.
const ClaimsKey = "claims"

func abortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{Success: false, Error: message})
}

// AuthMiddleWare requires a valid bearer credential and exposes its claims
// to downstream handlers. Missing or malformed headers are 401; a token
// that fails verification (bad signature, expired) is 403.
func AuthMiddleWare(tokenService usecase.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			abortWithError(c, http.StatusUnauthorized, "no authorization token provided")
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortWithError(c, http.StatusUnauthorized, "invalid authorization format")
			return
		}

		claims, err := tokenService.VerifyToken(parts[1])
		if err != nil {
			abortWithError(c, http.StatusForbidden, "forbidden access - invalid token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by AuthMiddleWare.
func ClaimsFrom(c *gin.Context) (*entity.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*entity.Claims)
	return claims, ok
}

// roleOf re-reads the user record on every request so role changes take
// effect immediately. Roles are never cached across requests.
func roleOf(c *gin.Context, users contract.IUserRepository) (entity.UserRole, bool) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		abortWithError(c, http.StatusUnauthorized, "not authenticated")
		return "", false
	}
	user, err := users.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		if err == entity.ErrNotFound {
			abortWithError(c, http.StatusForbidden, "unauthorized access")
			return "", false
		}
		abortWithError(c, http.StatusInternalServerError, "server error during role verification")
		return "", false
	}
	return user.EffectiveRole(), true
}

// AdminOnly allows only admins through.
func AdminOnly(users contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleOf(c, users)
		if !ok {
			return
		}
		if role != entity.UserRoleAdmin {
			abortWithError(c, http.StatusForbidden, "unauthorized admin access")
			return
		}
		c.Next()
	}
}

// InstructorOnly allows instructors and admins through.
func InstructorOnly(users contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := roleOf(c, users)
		if !ok {
			return
		}
		if !role.IsPrivileged() {
			abortWithError(c, http.StatusForbidden, "only instructors can access this feature")
			return
		}
		c.Next()
	}
}

// QueryEmail extracts the email from the query string.
func QueryEmail(c *gin.Context) string { return c.Query("email") }

// ParamEmail extracts the email from the path.
func ParamEmail(c *gin.Context) string { return c.Param("email") }

// SelfOnly gates strictly personal resources: the authenticated email must
// equal the requested one. No role bypass, admins included.
func SelfOnly(emailFrom func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		requested := emailFrom(c)
		if requested == "" {
			abortWithError(c, http.StatusBadRequest, "email parameter required")
			return
		}
		if claims.Email != requested {
			abortWithError(c, http.StatusForbidden, "unauthorized access - email mismatch")
			return
		}
		c.Next()
	}
}

// SelfOrPrivileged gates per-email resources: the authenticated email must
// match the requested one, or the caller must hold an instructor or admin
// role (re-read from the store so role changes apply immediately).
func SelfOrPrivileged(users contract.IUserRepository, emailFrom func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		requested := emailFrom(c)
		if requested == "" {
			abortWithError(c, http.StatusBadRequest, "email parameter required")
			return
		}

		if claims.Email == requested {
			c.Next()
			return
		}

		role, ok := roleOf(c, users)
		if !ok {
			return
		}
		if !role.IsPrivileged() {
			abortWithError(c, http.StatusForbidden, "unauthorized access - email mismatch")
			return
		}
		c.Next()
	}
}
