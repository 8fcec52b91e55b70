package usecase_test

import (
	"context"
	"testing"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
	"github.com/mazboy1/frasa-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUserUsecase(store *fakeUserStore) *usecase.UserUsecase {
	return usecase.NewUserUsecase(store, fakeValidator{}, testLogger{})
}

func TestCreateUser_StampsCreatedAt(t *testing.T) {
	store := newFakeUserStore()
	uc := newUserUsecase(store)

	created, err := uc.CreateUser(context.Background(), &entity.User{
		Name:  "New User",
		Email: "new@example.com",
	})

	assert.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	store := newFakeUserStore()
	uc := newUserUsecase(store)

	_, err := uc.CreateUser(context.Background(), &entity.User{
		Name:  "Bad Email",
		Email: "not-an-email",
	})

	assert.ErrorIs(t, err, entity.ErrValidation)
	assert.Empty(t, store.users)
}

func TestGetProfile_DefaultsRole(t *testing.T) {
	store := newFakeUserStore(entity.User{Email: "bare@example.com", Name: "Bare"})
	uc := newUserUsecase(store)

	profile, err := uc.GetProfile(context.Background(), "bare@example.com")

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleUser, profile.Role)
}

func TestGetProfile_NotFound(t *testing.T) {
	uc := newUserUsecase(newFakeUserStore())

	_, err := uc.GetProfile(context.Background(), "missing@example.com")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSetRole_RejectsUnknownRole(t *testing.T) {
	uc := newUserUsecase(newFakeUserStore())

	err := uc.SetRole(context.Background(), primitive.NewObjectID().Hex(), "superadmin")

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestSetRole_AcceptsKnownRoles(t *testing.T) {
	uc := newUserUsecase(newFakeUserStore())
	id := primitive.NewObjectID().Hex()

	for _, role := range []string{"admin", "instructor", "user"} {
		assert.NoError(t, uc.SetRole(context.Background(), id, role))
	}
}
