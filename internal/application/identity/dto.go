package identity

import (
	"time"

	"github.com/staffdir/backend/internal/domain/identity"
	"github.com/staffdir/backend/internal/infrastructure/auth"
)

// LoginInput carries sign-in credentials
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult is returned on a successful sign-in
type LoginResult struct {
	Token *auth.Token `json:"token"`
	User  UserView    `json:"user"`
}

// UserView is the read model for user accounts. The password hash never
// leaves the service.
type UserView struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewUserView builds a view from a domain user
func NewUserView(u *identity.User) UserView {
	return UserView{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// CreateUserInput carries fields for creating a user account
type CreateUserInput struct {
	Username    string `json:"username" binding:"required,max=100"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"max=100"`
	Role        string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// UpdateUserInput carries fields for updating a user account
type UpdateUserInput struct {
	DisplayName string `json:"display_name" binding:"max=100"`
	Role        string `json:"role" binding:"required,oneof=admin editor viewer"`
	Active      bool   `json:"active"`
}

// ChangePasswordInput carries fields for a password change
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
