package contract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns every user record.
	ListUsers(ctx context.Context) ([]entity.User, error)
	// ListByRole returns users holding the given role.
	ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error)
	// UpdateUser overwrites the profile fields of the user with the given id.
	UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error)
	// SetRole changes a user's role by ID.
	SetRole(ctx context.Context, id string, role entity.UserRole) error
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
	// CountByRole counts users holding the given role.
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)
}
