package models

import "time"

// DefaultRole is assigned to every account at registration.
// There is no promotion flow; every registered user is a driver.
const DefaultRole = "driver"

// User represents a registered account used for authentication and
// route ownership.
type User struct {
	// ID is the unique account identifier, assigned at creation and
	// never changed afterwards.
	ID string `json:"id"`

	// Email is the unique login key. Uniqueness is case-sensitive and
	// enforced by the user repository.
	Email string `json:"email"`

	// Password is the login secret, stored verbatim.
	// Never serialized; compared exactly during login.
	Password string `json:"-"`

	// Name is the display name of the driver.
	Name string `json:"name"`

	// Company is an optional organization the driver belongs to.
	Company string `json:"company"`

	// Role is always DefaultRole; kept on the record for the wire shape.
	Role string `json:"role"`

	// CreatedAt is set once at registration.
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the wire representation of an account returned by the
// auth endpoints. It deliberately omits Password and CreatedAt.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

// Public returns the response-safe projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Company: u.Company,
		Role:    u.Role,
	}
}
