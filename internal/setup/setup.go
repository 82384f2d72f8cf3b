package setup

import (
	"fmt"

	"github.com/goaltrack-dev/goaltrack/internal/config"
	"github.com/goaltrack-dev/goaltrack/internal/handler"
	"github.com/goaltrack-dev/goaltrack/internal/middleware"
	"github.com/goaltrack-dev/goaltrack/internal/service"
	"github.com/goaltrack-dev/goaltrack/internal/storage/memory"
	"github.com/goaltrack-dev/goaltrack/internal/storage/pg"
	"github.com/goaltrack-dev/goaltrack/internal/token"
)

// Storage is the combined store contract the services rely on. Both the
// in-memory and the postgres implementations satisfy it; the services
// never know which one is active.
type Storage interface {
	service.UserStorage
	service.AdminStorage
	service.GoalStorage
	handler.HealthChecker
}

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Cleanup        func() error
}

// New initializes all dependencies required for the application.
func New(cfg *config.Config) (*Dependencies, error) {
	var storage Storage
	cleanup := func() error { return nil }

	switch cfg.Public.Storage {
	case "memory":
		storage = memory.New()
	case "postgres":
		pgStorage, err := pg.New(cfg)
		if err != nil {
			return nil, err
		}
		storage = pgStorage
		cleanup = pgStorage.Cleanup
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Public.Storage)
	}

	tokens := token.New(cfg.JwtKey(), cfg.TokenTTL())

	auth := service.NewAuth(storage, tokens)
	goals := service.NewGoal(storage)
	admin := service.NewAdmin(storage)

	h := handler.New(auth, goals, admin, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
		Cleanup:        cleanup,
	}, nil
}
