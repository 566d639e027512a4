package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdir/backend/internal/domain/identity"
	"github.com/staffdir/backend/internal/domain/shared"
	"github.com/staffdir/backend/internal/infrastructure/auth"
)

// ErrInvalidCredentials is returned for a bad username or password. The
// message deliberately does not say which one was wrong.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService handles sign-in, sign-out and user account management
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("username", input.Username))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account is disabled")
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        string(user.Role),
		Permissions: user.Role.Permissions(),
	})
	if err != nil {
		return nil, err
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Warn("could not record login time", zap.Error(err))
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))
	return &LoginResult{Token: token, User: NewUserView(user)}, nil
}

// Logout revokes the presented token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

// IsTokenRevoked reports whether a token was revoked by a logout
func (s *AuthService) IsTokenRevoked(ctx context.Context, claims *auth.Claims) (bool, error) {
	return s.blacklist.IsBlacklisted(ctx, claims.ID)
}

// CreateUser creates a new user account
func (s *AuthService) CreateUser(ctx context.Context, input CreateUserInput) (*UserView, error) {
	if exists, err := s.userRepo.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, shared.NewDomainError("DUPLICATE_USERNAME",
			fmt.Sprintf("username '%s' already exists", input.Username))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(input.Username, string(hash), input.DisplayName, identity.Role(input.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	view := NewUserView(user)
	return &view, nil
}

// UpdateUser changes a user's display name, role, or status
func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.DisplayName = input.DisplayName
	if err := user.ChangeRole(identity.Role(input.Role)); err != nil {
		return nil, err
	}
	if input.Active && !user.IsActive() {
		if err := user.Activate(); err != nil {
			return nil, err
		}
	} else if !input.Active && user.IsActive() {
		if err := user.Disable(); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	view := NewUserView(user)
	return &view, nil
}

// ChangePassword verifies the current password and sets a new one
func (s *AuthService) ChangePassword(ctx context.Context, id uuid.UUID, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.Touch()

	return s.userRepo.Update(ctx, user)
}

// DeleteUser removes a user account
func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

// GetUser returns a single user account
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewUserView(user)
	return &view, nil
}

// ListUsers returns all user accounts
func (s *AuthService) ListUsers(ctx context.Context) ([]UserView, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = NewUserView(u)
	}
	return views, nil
}
