package usecasecontract

import (
	"context"

	"github.com/mazboy1/frasa-backend/internal/domain/entity"
)

// IAuthUseCase issues signed bearer credentials.
type IAuthUseCase interface {
	// IssueToken signs a credential for the given identity. When role is
	// empty it is looked up from the user record, defaulting to "user".
	// Returns the token and the role it was signed with.
	IssueToken(ctx context.Context, email, name, role string) (string, string, error)
}

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// GetProfile returns the user with role and profile fields normalized.
	GetProfile(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	ListInstructors(ctx context.Context) ([]entity.User, error)
	UpdateUser(ctx context.Context, id string, user *entity.User) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	// SetRole is the emergency role override.
	SetRole(ctx context.Context, id string, role string) error
}
