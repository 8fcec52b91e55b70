package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	SetToken(*gin.Context)
	CreateUser(*gin.Context)
	GetUser(*gin.Context)
	ListUsers(*gin.Context)
	ListInstructors(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
}

var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	authUsecase usecasecontract.IAuthUseCase
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(authUsecase usecasecontract.IAuthUseCase, userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
		userUsecase: userUsecase,
	}
}

// SetToken issues a signed bearer credential for the posted identity.
func (h *UserHandler) SetToken(c *gin.Context) {
	var req dto.SetTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	token, role, err := h.authUsecase.IssueToken(c.Request.Context(), req.Email, req.Name, req.Role)
	if err != nil {
		DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Success: true,
		Token:   token,
		User: dto.TokenUser{
			Email: req.Email,
			Name:  req.Name,
			Role:  role,
		},
	})
}

// CreateUser handles signup.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.NewUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user := &entity.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      entity.UserRole(req.Role),
		PhotoURL:  req.PhotoURL,
		Address:   req.Address,
		About:     req.About,
		Skills:    req.Skills,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	created, err := h.userUsecase.CreateUser(c.Request.Context(), user)
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, created)
}

// GetUser returns the normalized profile for an email, with the role
// defaulted to "user" when the record has none.
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")
	user, err := h.userUsecase.GetProfile(c.Request.Context(), email)
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// ListUsers returns every user record (admin view).
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

// ListInstructors returns the public instructor directory.
func (h *UserHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.userUsecase.ListInstructors(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, instructors)
}

// UpdateUser overwrites a user's profile fields; a non-empty role in the
// payload additionally triggers the emergency role override.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user := &entity.User{
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Address:  req.Address,
		About:    req.About,
		Skills:   req.Skills,
		Phone:    req.Phone,
	}
	updated, err := h.userUsecase.UpdateUser(c.Request.Context(), id, user)
	if err != nil {
		DomainError(c, err)
		return
	}

	if req.Role != "" {
		if err := h.userUsecase.SetRole(c.Request.Context(), id, req.Role); err != nil {
			DomainError(c, err)
			return
		}
		updated.Role = entity.UserRole(req.Role)
	}
	SuccessHandler(c, http.StatusOK, updated)
}

// DeleteUser removes a user record.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		DomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted successfully")
}
