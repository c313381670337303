package domain

import "time"

const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

// User is a registered account. Sellers own properties.
type User struct {
	ID           int64
	Username     string
	Name         string
	Email        string
	PhoneNumber  string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate holds the optional changes of PUT /api/users/me.
// Empty strings mean "leave unchanged".
type ProfileUpdate struct {
	Name        string
	Email       string
	PhoneNumber string
	OldPassword string
	NewPassword string
}

// Identity is the authenticated principal attached to a request.
// Authorities stay empty: this service grants no roles through the token.
type Identity struct {
	Subject     string
	Authorities []string
}

// RevokedToken is a bearer token invalidated before its natural expiry.
type RevokedToken struct {
	Token     string
	ExpiresAt time.Time
	RevokedAt time.Time
}
