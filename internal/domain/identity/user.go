package identity

import (
	"strings"
	"time"

	"github.com/staffdir/backend/internal/domain/shared"
)

// UserStatus represents the lifecycle status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// Role represents a user's role in the directory application
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Permission strings checked by the HTTP permission middleware
const (
	PermEmployeeRead   = "employee:read"
	PermEmployeeWrite  = "employee:write"
	PermEmployeeImport = "employee:import"
	PermEmployeeExport = "employee:export"
	PermDirectoryWrite = "directory:write"
	PermUserManage     = "user:manage"
)

// rolePermissions maps each role to the permissions it grants
var rolePermissions = map[Role][]string{
	RoleAdmin: {
		PermEmployeeRead, PermEmployeeWrite, PermEmployeeImport,
		PermEmployeeExport, PermDirectoryWrite, PermUserManage,
	},
	RoleEditor: {
		PermEmployeeRead, PermEmployeeWrite, PermEmployeeImport, PermEmployeeExport,
	},
	RoleViewer: {
		PermEmployeeRead, PermEmployeeExport,
	},
}

// IsValid returns true if the role is one of the fixed set
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions returns the permissions granted by the role
func (r Role) Permissions() []string {
	return rolePermissions[r]
}

// User represents an account that can sign in to the directory application
type User struct {
	shared.BaseAggregateRoot
	Username     string
	PasswordHash string
	DisplayName  string
	Role         Role
	Status       UserStatus
	LastLoginAt  *time.Time
}

// NewUser creates a new active user account
func NewUser(username, passwordHash, displayName string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) > 100 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role is not recognized")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		PasswordHash:      passwordHash,
		DisplayName:       strings.TrimSpace(displayName),
		Role:              role,
		Status:            UserStatusActive,
	}, nil
}

// IsActive returns true if the account can sign in
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// RecordLogin marks a successful login
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.Touch()
}

// ChangeRole updates the user's role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_ROLE", "Role is not recognized")
	}
	u.Role = role
	u.Touch()
	u.IncrementVersion()
	return nil
}

// Disable blocks the account from signing in
func (u *User) Disable() error {
	if u.Status == UserStatusDisabled {
		return shared.NewDomainError("ALREADY_DISABLED", "User is already disabled")
	}
	u.Status = UserStatusDisabled
	u.Touch()
	u.IncrementVersion()
	return nil
}

// Activate re-enables a disabled account
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}
	u.Status = UserStatusActive
	u.Touch()
	u.IncrementVersion()
	return nil
}
