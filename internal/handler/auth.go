package handler

import (
	"net/http"

	"github.com/goaltrack-dev/goaltrack/internal/api"
	"github.com/goaltrack-dev/goaltrack/internal/domain"
	"github.com/goaltrack-dev/goaltrack/internal/middleware"
	"github.com/goaltrack-dev/goaltrack/internal/utils"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var body api.SignupRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, user, err := h.auth.Signup(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.AuthResponse{Token: token, Email: user.Email})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, user, err := h.auth.Login(domain.Credentials{Email: body.Email, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.AuthResponse{Token: token, Email: user.Email})
}

// Me reports the caller's account and role, so clients never need to
// infer privileges from whether an admin endpoint happens to succeed.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r)
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.auth.Me(email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.NewMeResponse(user))
}
