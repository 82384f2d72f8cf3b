package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/goaltrack-dev/goaltrack/internal/logger"
	"github.com/goaltrack-dev/goaltrack/internal/service"
	"github.com/goaltrack-dev/goaltrack/internal/utils"
)

// HealthChecker is implemented by storages that can report readiness.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	goals  service.GoalService
	admin  service.AdminService
	health HealthChecker
}

func New(auth service.AuthService, goals service.GoalService, admin service.AdminService, health HealthChecker) *Handler {
	return &Handler{auth: auth, goals: goals, admin: admin, health: health}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		utils.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}
