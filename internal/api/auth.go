package api

import (
	"time"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
)

// Request DTOs

type SignupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// MeResponse answers "who am I and what can I do" explicitly, so
// clients don't have to probe admin endpoints to discover their role.
type MeResponse struct {
	Id        domain.UserId `json:"id"`
	Email     string        `json:"email"`
	Role      domain.Role   `json:"role"`
	IsAdmin   bool          `json:"isAdmin"`
	CreatedAt time.Time     `json:"createdAt"`
}

func NewMeResponse(u domain.User) MeResponse {
	return MeResponse{
		Id:        u.Id,
		Email:     u.Email,
		Role:      u.Role,
		IsAdmin:   u.Role.Admin(),
		CreatedAt: u.CreatedAt,
	}
}
