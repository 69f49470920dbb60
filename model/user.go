package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	IsAdmin   bool      `db:"is_admin" json:"isAdmin"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    string
	Email string
}

// LoginRequest signs in with an email; unknown emails get an account.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// Actor is the authenticated user performing a request.
type Actor struct {
	ID      string
	IsAdmin bool
}

// CanModify reports whether the actor may mutate a record owned by ownerID.
func (a Actor) CanModify(ownerID string) bool {
	return a.IsAdmin || a.ID == ownerID
}
