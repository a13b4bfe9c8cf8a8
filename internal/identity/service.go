package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

const (
	msgAllFieldsRequired   = "All fields are required"
	msgCredentialsRequired = "Phone and password are required"
	msgDuplicatePhone      = "User with this phone number already exists"
	msgInvalidCredentials  = "Invalid phone number or password"
	msgPasswordTooLong     = "Password must be at most 72 bytes"
	msgUserNotFound        = "User not found"
)

// Service manages identity lifecycle.
type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher, now: time.Now}
}

// Register creates a new user with the default role and a hashed password.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	if blank(reg.Name) || blank(reg.Phone) || blank(reg.Password) {
		return User{}, apperr.Validation(msgAllFieldsRequired)
	}

	// Fast path only; the store's unique constraint is authoritative.
	if _, err := s.repo.FindByPhone(ctx, reg.Phone); err == nil {
		return User{}, apperr.New(apperr.KindDuplicateUser, msgDuplicatePhone)
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, apperr.Store("Failed to register user", err)
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return User{}, apperr.Validation(msgPasswordTooLong)
		}
		return User{}, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	user := User{
		ID:           uuid.New().String(),
		Name:         reg.Name,
		Phone:        reg.Phone,
		Role:         RoleUser,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrPhoneTaken) {
			return User{}, apperr.New(apperr.KindDuplicateUser, msgDuplicatePhone)
		}
		return User{}, apperr.Store("Failed to register user", err)
	}

	return user, nil
}

// Authenticate verifies login credentials. Unknown phones and wrong passwords
// produce the same error so callers cannot tell which part was wrong.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	if blank(creds.Phone) || blank(creds.Password) {
		return User{}, apperr.Validation(msgCredentialsRequired)
	}

	user, err := s.repo.FindByPhone(ctx, creds.Phone)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperr.New(apperr.KindInvalidCredentials, msgInvalidCredentials)
		}
		return User{}, apperr.Store("Internal server error", err)
	}

	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		return User{}, apperr.New(apperr.KindInvalidCredentials, msgInvalidCredentials)
	}

	return user, nil
}

// Profile returns the live record for id.
func (s *Service) Profile(ctx context.Context, id string) (User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperr.NotFound(msgUserNotFound)
		}
		return User{}, apperr.Store("Internal server error", err)
	}
	return user, nil
}

// ChangeRole updates the role of user id.
func (s *Service) ChangeRole(ctx context.Context, id string, role Role) (User, error) {
	if !role.Valid() {
		return User{}, apperr.Validation("Role must be one of: user, admin")
	}
	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperr.NotFound(msgUserNotFound)
		}
		return User{}, apperr.Store("Failed to update user role", err)
	}
	return user, nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
