package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goaltrack-dev/goaltrack/internal/domain"
	internal_errors "github.com/goaltrack-dev/goaltrack/internal/errors"
)

func TestSignupHandler(t *testing.T) {
	h := &Handler{}
	router := mux.NewRouter()
	router.HandleFunc("/auth/signup", h.Signup).Methods("POST")

	t.Run("successful signup", func(t *testing.T) {
		h.auth = &MockAuthService{
			SignupFunc: func(creds domain.Credentials) (string, domain.User, error) {
				assert.Equal(t, "a@example.com", creds.Email)
				assert.Equal(t, "pass", creds.Password)
				return "tok", domain.User{Email: creds.Email, Role: domain.RoleOwner}, nil
			},
		}

		req := createRequest(t, http.MethodPost, "/auth/signup", []byte(`{"email":"a@example.com","password":"pass"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"token":"tok","email":"a@example.com"}`, rr.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		h.auth = &MockAuthService{}

		for _, body := range []string{
			`{"email":"a@example.com"}`,
			`{"password":"pass"}`,
			`{"email":"","password":""}`,
			`{}`,
		} {
			req := createRequest(t, http.MethodPost, "/auth/signup", []byte(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		h.auth = &MockAuthService{
			SignupFunc: func(creds domain.Credentials) (string, domain.User, error) {
				return "", domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User already exists", StatusCode: http.StatusBadRequest}
			},
		}

		req := createRequest(t, http.MethodPost, "/auth/signup", []byte(`{"email":"a@example.com","password":"pass"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"User already exists"}`, rr.Body.String())
	})
}

func TestLoginHandler(t *testing.T) {
	h := &Handler{}
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", h.Login).Methods("POST")

	t.Run("successful login", func(t *testing.T) {
		h.auth = &MockAuthService{
			LoginFunc: func(creds domain.Credentials) (string, domain.User, error) {
				return "tok", domain.User{Email: creds.Email}, nil
			},
		}

		req := createRequest(t, http.MethodPost, "/auth/login", []byte(`{"email":"a@example.com","password":"pass"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"token":"tok","email":"a@example.com"}`, rr.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		h.auth = &MockAuthService{
			LoginFunc: func(creds domain.Credentials) (string, domain.User, error) {
				return "", domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
			},
		}

		req := createRequest(t, http.MethodPost, "/auth/login", []byte(`{"email":"a@example.com","password":"wrong"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := createRequest(t, http.MethodPost, "/auth/login", []byte(`{invalid json::}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMeHandler(t *testing.T) {
	h := &Handler{}
	router := mux.NewRouter()
	router.HandleFunc("/auth/me", h.Me).Methods("GET")

	t.Run("reports role explicitly", func(t *testing.T) {
		h.auth = &MockAuthService{
			MeFunc: func(email domain.Email) (domain.User, error) {
				return domain.User{Id: 2, Email: email, Role: domain.RoleAdmin}, nil
			},
		}

		req := withIdentity(createRequest(t, http.MethodGet, "/auth/me", nil), "a@example.com")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"role":"admin"`)
		assert.Contains(t, rr.Body.String(), `"isAdmin":true`)
	})

	t.Run("no resolved identity", func(t *testing.T) {
		h.auth = &MockAuthService{}

		req := createRequest(t, http.MethodGet, "/auth/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stale identity", func(t *testing.T) {
		h.auth = &MockAuthService{
			MeFunc: func(email domain.Email) (domain.User, error) {
				return domain.User{}, notFound("User not found")
			},
		}

		req := withIdentity(createRequest(t, http.MethodGet, "/auth/me", nil), "gone@example.com")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
