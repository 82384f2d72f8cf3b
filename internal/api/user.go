package api

import (
	"time"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
)

// Request DTOs

type PromoteRequest struct {
	TargetEmail string `json:"targetEmail" validate:"required"`
}

// Response DTOs

// UserResponse is the admin-panel view of an account. It never carries
// the password hash.
type UserResponse struct {
	Id        domain.UserId `json:"id"`
	Email     string        `json:"email"`
	IsAdmin   bool          `json:"isAdmin"`
	CreatedAt time.Time     `json:"createdAt"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		Id:        u.Id,
		Email:     u.Email,
		IsAdmin:   u.Role.Admin(),
		CreatedAt: u.CreatedAt,
	}
}

type PromoteResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
