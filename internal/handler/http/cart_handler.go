package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	"github.com/mazboy1/frasa-backend/internal/handler/http/middleware"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

type CartHandler struct {
	cartUsecase usecasecontract.ICartUseCase
}

func NewCartHandler(cartUsecase usecasecontract.ICartUseCase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

// AddToCart puts a class in the caller's cart. Adding one the user already
// holds is a 400.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userMail := req.UserMail
	if userMail == "" {
		if claims, ok := middleware.ClaimsFrom(c); ok {
			userMail = claims.Email
		}
	}
	if userMail == "" {
		ErrorHandler(c, http.StatusBadRequest, "userMail required")
		return
	}

	item, err := h.cartUsecase.AddToCart(c.Request.Context(), req.ClassID, userMail)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{
		Success: true,
		Data:    gin.H{"insertedId": item.ID},
		Message: "Class added to cart successfully",
	})
}

// GetCart resolves the user's cart into class documents.
func (h *CartHandler) GetCart(c *gin.Context) {
	classes, err := h.cartUsecase.CartClasses(c.Request.Context(), c.Param("email"))
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, classes)
}

// RemoveFromCart deletes one cart row.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	if err := h.cartUsecase.RemoveFromCart(c.Request.Context(), c.Param("id")); err != nil {
		DomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Class removed from cart")
}
