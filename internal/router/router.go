package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/goaltrack-dev/goaltrack/internal/middleware"
	"github.com/goaltrack-dev/goaltrack/internal/middleware/metrics"
	rl "github.com/goaltrack-dev/goaltrack/internal/middleware/ratelimiter"
	"github.com/goaltrack-dev/goaltrack/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for browser clients
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"http://localhost:3000"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()

	// Credential-taking endpoints get brute-force protection by IP
	authPublic := auth.NewRoute().Subrouter()
	authPublic.Use(mw.RateLimit(rl.New(1, 5, 1*time.Hour), mw.GetIP)) // burst of 5, then 1 per second per IP
	authPublic.HandleFunc("/signup", h.Signup).Methods("POST")
	authPublic.HandleFunc("/login", h.Login).Methods("POST")

	auth.Handle("/me", authMw.RequireAuth()(http.HandlerFunc(h.Me))).Methods("GET")

	// Routes requiring a resolved identity. Whether that identity may do
	// anything is decided by the services against the store.
	loggedIn := r.NewRoute().Subrouter()
	loggedIn.Use(authMw.RequireAuth())

	loggedIn.HandleFunc("/goals", h.ListGoals).Methods("GET")
	loggedIn.HandleFunc("/goals", h.CreateGoal).Methods("POST")
	loggedIn.HandleFunc("/goals/{id}", h.ToggleGoal).Methods("PATCH")
	loggedIn.HandleFunc("/goals/{id}", h.DeleteGoal).Methods("DELETE")

	loggedIn.HandleFunc("/users", h.ListUsers).Methods("GET")
	loggedIn.HandleFunc("/users/{id}", h.DeleteUser).Methods("DELETE")

	loggedIn.HandleFunc("/admin/promote", h.PromoteUser).Methods("POST")

	return r
}
