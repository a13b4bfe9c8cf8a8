package identity

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts s into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Satisfies reports whether an actor holding r may pass a gate requiring required.
// Admins pass every gate.
func (r Role) Satisfies(required Role) bool {
	switch r {
	case RoleAdmin:
		return required.Valid()
	case RoleUser:
		return required == RoleUser
	default:
		return false
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so roles decoded from JSON
// or token claims are validated.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) String() string { return string(r) }
