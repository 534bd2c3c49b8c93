package models

import "github.com/google/uuid"

// User is the session identity fabricated by the auth stubs. There is no
// account storage; a User lives only inside the JWT that carries it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// NewUser fabricates a user record from registration form input, assigning a
// fresh UUID as the identity.
func NewUser(name, email, phone string) *User {
	return &User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
}
