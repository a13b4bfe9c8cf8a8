package auth

import (
	"context"
	"time"

	"github.com/orderdesk/orderdesk/internal/apperr"
	"github.com/orderdesk/orderdesk/internal/identity"
)

// Service issues session tokens on top of identity registration and login.
type Service struct {
	ids         *identity.Service
	codec       *Codec
	revocations Revocations
}

// NewService wires the identity service, token codec and revocation list.
// A nil revocations disables logout-time revocation.
func NewService(ids *identity.Service, codec *Codec, revocations Revocations) *Service {
	if revocations == nil {
		revocations = NoRevocations{}
	}
	return &Service{ids: ids, codec: codec, revocations: revocations}
}

// Session is the result of a successful registration or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      identity.User
}

// Register creates the account and signs a token for it.
func (s *Service) Register(ctx context.Context, reg identity.Registration) (Session, error) {
	user, err := s.ids.Register(ctx, reg)
	if err != nil {
		return Session{}, err
	}
	return s.session(user)
}

// Login validates credentials and signs a token.
func (s *Service) Login(ctx context.Context, creds identity.Credentials) (Session, error) {
	user, err := s.ids.Authenticate(ctx, creds)
	if err != nil {
		return Session{}, err
	}
	return s.session(user)
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, claims Claims) error {
	if claims.ExpiresAt == nil {
		return apperr.Unauthorized("Invalid or expired token")
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperr.Store("Failed to log out", err)
	}
	return nil
}

// Profile returns the live account behind an authenticated identity.
func (s *Service) Profile(ctx context.Context, id Identity) (identity.User, error) {
	return s.ids.Profile(ctx, id.UserID)
}

// ChangeRole sets a user's role. Tokens already issued keep their old role
// until they expire or are logged out.
func (s *Service) ChangeRole(ctx context.Context, userID string, role identity.Role) (identity.User, error) {
	return s.ids.ChangeRole(ctx, userID, role)
}

func (s *Service) session(user identity.User) (Session, error) {
	tok, err := s.codec.Issue(Identity{UserID: user.ID, Phone: user.Phone, Role: user.Role})
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return Session{Token: tok.Value, ExpiresAt: tok.ExpiresAt, User: user}, nil
}
