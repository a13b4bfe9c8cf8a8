package identity

import "time"

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Registration is the input of a sign-up.
type Registration struct {
	Name     string
	Phone    string
	Password string
}

// Credentials request structure.
type Credentials struct {
	Phone    string
	Password string
}
