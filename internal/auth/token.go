package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/orderdesk/orderdesk/internal/identity"
)

// TokenTTL is how long a session token stays valid after issuance.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenInvalid covers bad signatures, malformed tokens and unknown claims.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned once a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the verified actor attached to a request.
type Identity struct {
	UserID string
	Phone  string
	Role   identity.Role
}

// Claims is the signed token payload.
type Claims struct {
	UserID string        `json:"userId"`
	Phone  string        `json:"phone"`
	Role   identity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity returns the actor described by the claims.
func (c Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Phone: c.Phone, Role: c.Role}
}

// Token is an issued, signed session token.
type Token struct {
	Value     string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec issues and verifies HS256 session tokens with a fixed secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewCodec builds a codec. The secret is fixed for the codec's lifetime.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Issue signs a token for id, valid for the codec's TTL.
func (c *Codec) Issue(id Identity) (Token, error) {
	if !id.Role.Valid() {
		return Token{}, fmt.Errorf("issue token: invalid role %q", id.Role)
	}
	now := c.now().UTC().Truncate(time.Second)
	exp := now.Add(c.ttl)
	jti := uuid.NewString()

	claims := Claims{
		UserID: id.UserID,
		Phone:  id.Phone,
		Role:   id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: signed, ID: jti, IssuedAt: now, ExpiresAt: exp}, nil
}

// Verify checks signature and expiry and returns the claims.
func (c *Codec) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := c.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !parsed.Valid || claims.UserID == "" || claims.ExpiresAt == nil || !claims.Role.Valid() {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
