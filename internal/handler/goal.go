package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goaltrack-dev/goaltrack/internal/api"
	"github.com/goaltrack-dev/goaltrack/internal/middleware"
	"github.com/goaltrack-dev/goaltrack/internal/utils"
)

func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := h.goals.List(email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, goals)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body api.CreateGoalRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	goal, err := h.goals.Create(email, body.Title, body.Description)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, goal)
}

func (h *Handler) ToggleGoal(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body api.ToggleGoalRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	goal, err := h.goals.SetCompleted(email, mux.Vars(r)["id"], *body.Completed)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, goal)
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.goals.Delete(email, mux.Vars(r)["id"]); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.MessageResponse{Message: "Goal deleted"})
}
