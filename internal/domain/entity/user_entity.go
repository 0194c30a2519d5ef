package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds the bcrypt hash, never the plain text.
type User struct {
	ID        string
	FullName  string
	Email     string
	Password  string
	CreatedOn time.Time
}

// SafeUser is the only user shape that leaves the service boundary.
type SafeUser struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"createdOn"`
}

// Safe projects u without its password hash.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedOn: u.CreatedOn,
	}
}
