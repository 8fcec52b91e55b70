package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account in the system
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Role      UserRole           `bson:"role,omitempty" json:"role"`
	PhotoURL  string             `bson:"photoUrl,omitempty" json:"photoUrl"`
	Address   string             `bson:"address,omitempty" json:"address"`
	About     string             `bson:"about,omitempty" json:"about"`
	Skills    string             `bson:"skills,omitempty" json:"skills"`
	Phone     string             `bson:"phone,omitempty" json:"phone"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleInstructor UserRole = "instructor"
	UserRoleUser       UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// EffectiveRole resolves the stored role, defaulting to "user" when the
// record has no role field.
func (u *User) EffectiveRole() UserRole {
	if u.Role == "" {
		return DefaultRole()
	}
	return u.Role
}

// IsPrivileged reports whether the role grants authoring or admin access.
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleInstructor || r == UserRoleAdmin
}
