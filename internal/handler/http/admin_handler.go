package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	"github.com/mazboy1/frasa-backend/internal/handler/http/middleware"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

// AdminHandler serves the admin dashboard: aggregate stats and class
// feedback.
type AdminHandler struct {
	statsUsecase    usecasecontract.IStatsUseCase
	feedbackUsecase usecasecontract.IFeedbackUseCase
}

func NewAdminHandler(statsUsecase usecasecontract.IStatsUseCase, feedbackUsecase usecasecontract.IFeedbackUseCase) *AdminHandler {
	return &AdminHandler{
		statsUsecase:    statsUsecase,
		feedbackUsecase: feedbackUsecase,
	}
}

// AdminStats returns the dashboard aggregate counts.
func (h *AdminHandler) AdminStats(c *gin.Context) {
	stats, err := h.statsUsecase.AdminStats(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}

// CreateFeedback records admin feedback on a class and links it back into
// the class document.
func (h *AdminHandler) CreateFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	adminEmail := ""
	if claims, ok := middleware.ClaimsFrom(c); ok {
		adminEmail = claims.Email
	}

	feedback, err := h.feedbackUsecase.CreateFeedback(c.Request.Context(), req.ClassID, req.Feedback, req.Rating, adminEmail)
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, feedback)
}
