// Package router provides HTTP routing configuration using Chi.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keywarden/keywarden/internal/api/dto"
	"github.com/keywarden/keywarden/internal/api/handler"
	"github.com/keywarden/keywarden/internal/api/middleware"
	"github.com/keywarden/keywarden/internal/audit"
	"github.com/keywarden/keywarden/internal/store"
)

// Config holds router configuration.
type Config struct {
	// Version is the server version reported by /health.
	Version string

	// Defaults supplies the standard and context applied when a
	// request leaves them unset.
	Defaults dto.AssessOptions

	// Store persists assessment history. Nil disables persistence.
	Store store.Store

	// Audit receives one event per assessment. Nil disables auditing.
	Audit audit.Writer
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORS)

	auditWriter := cfg.Audit
	if auditWriter == nil {
		auditWriter = audit.NopWriter{}
	}

	// Health endpoints (always enabled)
	healthHandler := handler.NewHealthHandler(cfg.Version, cfg.Store)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	assessHandler := handler.NewAssessHandler(cfg.Defaults, cfg.Store, auditWriter)
	standardsHandler := handler.NewStandardsHandler()
	assessmentsHandler := handler.NewAssessmentsHandler(cfg.Store)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/standards", standardsHandler.List)

		r.Route("/assess", func(r chi.Router) {
			r.Post("/hash", assessHandler.Hash)
			r.Post("/symmetric", assessHandler.Symmetric)
			r.Post("/ecc", assessHandler.Ecc)
			r.Post("/ffc", assessHandler.Ffc)
			r.Post("/ifc", assessHandler.Ifc)
			r.Post("/certificate", assessHandler.Certificate)
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Get("/", assessmentsHandler.List)
			r.Get("/{id}", assessmentsHandler.Get)
		})
	})

	return r
}
