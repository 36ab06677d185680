package models

import "time"

// User is a back-office login. Passwords are kept only as bcrypt hashes.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (in LoginInput) Validate() error {
	return validateInput(in, "username and password required")
}

// UserSummary is the part of a user returned alongside a token.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
