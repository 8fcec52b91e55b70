package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	"github.com/mazboy1/frasa-backend/internal/handler/http/middleware"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

type PaymentHandler struct {
	checkoutUsecase usecasecontract.ICheckoutUseCase
}

func NewPaymentHandler(checkoutUsecase usecasecontract.ICheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{checkoutUsecase: checkoutUsecase}
}

// CreatePaymentIntent asks the gateway for a client secret for the posted
// price.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.PaymentIntentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	price, err := strconv.ParseFloat(string(req.Price), 64)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, entity.ErrValidation.Error()+": price must be a number")
		return
	}

	secret, err := h.checkoutUsecase.CreatePaymentIntent(c.Request.Context(), price)
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaymentIntentResponse{ClientSecret: secret})
}

// PaymentInfo runs the checkout for the posted class batch. The enrolling
// email defaults to the authenticated identity.
func (h *PaymentHandler) PaymentInfo(c *gin.Context) {
	var req dto.PaymentInfoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userEmail := req.UserEmail
	if userEmail == "" {
		if claims, ok := middleware.ClaimsFrom(c); ok {
			userEmail = claims.Email
		}
	}
	if userEmail == "" {
		ErrorHandler(c, http.StatusBadRequest, "userEmail required")
		return
	}

	enrollment, err := h.checkoutUsecase.Enroll(c.Request.Context(), usecasecontract.CheckoutInfo{
		UserEmail:     userEmail,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		ClassesID:     req.ClassesID,
	})
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, enrollment)
}

// PaymentHistory lists a user's payment records, newest first.
func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	payments, err := h.checkoutUsecase.PaymentHistory(c.Request.Context(), c.Param("email"))
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, payments)
}

// EnrolledClasses lists the classes a user has paid for.
func (h *PaymentHandler) EnrolledClasses(c *gin.Context) {
	rows, err := h.checkoutUsecase.EnrolledClasses(c.Request.Context(), c.Param("email"))
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}
