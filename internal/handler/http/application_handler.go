package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

type ApplicationHandler struct {
	applicationUsecase usecasecontract.IApplicationUseCase
}

func NewApplicationHandler(applicationUsecase usecasecontract.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{applicationUsecase: applicationUsecase}
}

// Apply submits an instructor application.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyInstructorRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	application, err := h.applicationUsecase.Apply(c.Request.Context(), &entity.InstructorApplication{
		Name:       req.Name,
		Email:      req.Email,
		Experience: req.Experience,
	})
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, application)
}

// GetApplication returns the application submitted under an email.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	application, err := h.applicationUsecase.GetApplication(c.Request.Context(), c.Param("email"))
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, application)
}

// ListApplications returns every application (admin review queue).
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.applicationUsecase.ListApplications(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, applications)
}
