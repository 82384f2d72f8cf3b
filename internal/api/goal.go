package api

// Request DTOs

type CreateGoalRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// Completed is a pointer so `{"completed": false}` passes the required
// check while a missing field does not.
type ToggleGoalRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// Response DTOs

type MessageResponse struct {
	Message string `json:"message"`
}
