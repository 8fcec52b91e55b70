package usecase

import (
	"context"
	"time"

	"github.com/mazboy1/frasa-backend/internal/domain/contract"
	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartUsecase manages a user's shopping cart.
type CartUsecase struct {
	cartRepo  contract.ICartRepository
	classRepo contract.IClassRepository
	logger    usecasecontract.IAppLogger
}

func NewCartUsecase(
	cartRepo contract.ICartRepository,
	classRepo contract.IClassRepository,
	logger usecasecontract.IAppLogger,
) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, classRepo: classRepo, logger: logger}
}

var _ usecasecontract.ICartUseCase = (*CartUsecase)(nil)

// AddToCart inserts a cart row for (classID, userMail). A pre-insert
// existence check gives the sequential duplicate its 400; the repository's
// unique index catches the concurrent duplicate and reports the same error.
func (uc *CartUsecase) AddToCart(ctx context.Context, classID, userMail string) (*entity.CartItem, error) {
	if _, err := primitive.ObjectIDFromHex(classID); err != nil {
		return nil, entity.ErrInvalidID
	}

	existing, err := uc.cartRepo.GetItem(ctx, classID, userMail)
	if err != nil && err != entity.ErrNotFound {
		uc.logger.Errorf("cart lookup failed for %s/%s: %v", classID, userMail, err)
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrAlreadyInCart
	}

	item := &entity.CartItem{
		ClassID:   classID,
		UserMail:  userMail,
		Submitted: time.Now(),
	}
	if err := uc.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// CartClasses resolves the user's cart rows into the class documents they
// point at. Rows holding malformed class ids are skipped.
func (uc *CartUsecase) CartClasses(ctx context.Context, userMail string) ([]entity.Class, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userMail)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		id, err := primitive.ObjectIDFromHex(item.ClassID)
		if err != nil {
			uc.logger.Warnf("cart row %s holds malformed class id %q", item.ID.Hex(), item.ClassID)
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []entity.Class{}, nil
	}
	return uc.classRepo.ListByIDs(ctx, ids)
}

func (uc *CartUsecase) RemoveFromCart(ctx context.Context, id string) error {
	return uc.cartRepo.RemoveItem(ctx, id)
}
