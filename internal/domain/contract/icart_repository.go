package contract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

type ICartRepository interface {
	// AddItem inserts a cart row. Returns entity.ErrAlreadyInCart if the
	// (classId, userMail) pair already exists.
	AddItem(ctx context.Context, item *entity.CartItem) error
	// GetItem looks up a cart row by class and user.
	GetItem(ctx context.Context, classID, userMail string) (*entity.CartItem, error)
	// ListByUser returns a user's cart rows.
	ListByUser(ctx context.Context, userMail string) ([]entity.CartItem, error)
	// RemoveItem deletes a single cart row by id.
	RemoveItem(ctx context.Context, id string) error
	// RemoveItems deletes the user's cart rows for the given class ids.
	RemoveItems(ctx context.Context, userMail string, classIDs []string) error
}
