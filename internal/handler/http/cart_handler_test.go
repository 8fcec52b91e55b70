package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mazboy1/frasa-backend/internal/handler/http"
	dto "github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	mocks "github.com/mazboy1/frasa-backend/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupCartRouter(h *handler.CartHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/add-to-cart", h.AddToCart)
	r.GET("/cart/:email", h.GetCart)
	r.DELETE("/delete-cart-item/:id", h.RemoveFromCart)
	return r
}

func TestAddToCart(t *testing.T) {
	mockCart := mocks.NewMockCartUsecase()
	h := handler.NewCartHandler(mockCart)
	r := setupCartRouter(h)
	payload := dto.AddToCartRequest{
		ClassID:  primitive.NewObjectID().Hex(),
		UserMail: "test@example.com",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/add-to-cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Class added to cart successfully")
	assert.Contains(t, w.Body.String(), "insertedId")
	assert.Equal(t, 1, mockCart.Added)
}

func TestAddToCart_Duplicate(t *testing.T) {
	mockCart := mocks.NewMockCartUsecase()
	mockCart.ShouldFailAdd = true
	h := handler.NewCartHandler(mockCart)
	r := setupCartRouter(h)
	payload := dto.AddToCartRequest{
		ClassID:  primitive.NewObjectID().Hex(),
		UserMail: "test@example.com",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/add-to-cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "class already in cart")
	assert.Equal(t, 0, mockCart.Added)
}

func TestAddToCart_NoUserMail(t *testing.T) {
	mockCart := mocks.NewMockCartUsecase()
	h := handler.NewCartHandler(mockCart)
	r := setupCartRouter(h)
	// no authenticated claims in context and no userMail in the payload
	payload := dto.AddToCartRequest{ClassID: primitive.NewObjectID().Hex()}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/add-to-cart", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userMail required")
}

func TestGetCart(t *testing.T) {
	mockCart := mocks.NewMockCartUsecase()
	h := handler.NewCartHandler(mockCart)
	r := setupCartRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart/test@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRemoveFromCart(t *testing.T) {
	mockCart := mocks.NewMockCartUsecase()
	h := handler.NewCartHandler(mockCart)
	r := setupCartRouter(h)
	id := primitive.NewObjectID().Hex()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/delete-cart-item/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Class removed from cart")
}
