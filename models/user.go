package models

// User represents a registered user of the catalogue.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	IsActive bool   `json:"-" db:"is_active"`
}

// CreateUserRequest represents the body of POST /users
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` // Plaintext; hashed before it reaches the store
}
