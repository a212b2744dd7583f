package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	Username     string    `json:"username" db:"username"`     // Primary key
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
