package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a row in the users table. The password hash never leaves the
// service layer; responses are built from UserResponse.
type User struct {
	UUID         uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	User UserResponse `json:"user"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converts a user row to its public representation.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		UUID:      u.UUID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
