package usecasecontract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// ICartUseCase manages a user's shopping cart.
type ICartUseCase interface {
	// AddToCart puts a class in the user's cart; adding the same class
	// twice fails with entity.ErrAlreadyInCart.
	AddToCart(ctx context.Context, classID, userMail string) (*entity.CartItem, error)
	// CartClasses resolves the user's cart rows into class documents.
	CartClasses(ctx context.Context, userMail string) ([]entity.Class, error)
	// RemoveFromCart deletes one cart row by id.
	RemoveFromCart(ctx context.Context, id string) error
}
