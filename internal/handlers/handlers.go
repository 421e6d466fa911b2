// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, String, Status)
// - Middleware data (c.Get/c.Set)
//
// We group related handlers into a struct (Handler) that holds shared
// dependencies, injected once at startup.
package handlers

import (
	"github.com/cosmos-reader/cosmos-reader-api/internal/cache"
	"github.com/cosmos-reader/cosmos-reader-api/internal/database"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/ai"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/spaceweather"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/worker"
	"github.com/cosmos-reader/cosmos-reader-api/internal/storage"
)

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy — just create a Handler with mock dependencies.
type Handler struct {
	DB           *database.DB
	Worker       *worker.Pool
	AI           *ai.Service
	SpaceWeather *spaceweather.Service
	Store        *storage.ObjectStore
	Cache        *cache.Cache
	JWTSecret    string
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db *database.DB, wp *worker.Pool, aiSvc *ai.Service, sw *spaceweather.Service, store *storage.ObjectStore, c *cache.Cache, jwtSecret string) *Handler {
	return &Handler{
		DB:           db,
		Worker:       wp,
		AI:           aiSvc,
		SpaceWeather: sw,
		Store:        store,
		Cache:        c,
		JWTSecret:    jwtSecret,
	}
}
