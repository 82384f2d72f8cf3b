package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/goaltrack-dev/goaltrack/internal/api"
	"github.com/goaltrack-dev/goaltrack/internal/middleware"
	"github.com/goaltrack-dev/goaltrack/internal/utils"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	users, err := h.admin.Users(email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.UserResponse, len(users))
	for i, user := range users {
		response[i] = api.NewUserResponse(user)
	}
	writeJSON(w, response)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetId, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "invalid user id: must be an integer")
		return
	}

	if err := h.admin.DeleteUser(email, targetId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.MessageResponse{Message: "User deleted successfully"})
}

func (h *Handler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body api.PromoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	promoted, err := h.admin.Promote(email, body.TargetEmail)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.PromoteResponse{
		Message: fmt.Sprintf("User %s promoted to admin", promoted.Email),
		Email:   promoted.Email,
	})
}
