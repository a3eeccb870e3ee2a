package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/api"
	apimiddleware "github.com/nathaniel1232/Studymaxx-sub002/internal/api/middleware"
)

// setupRouter builds the route tree with its middleware stack.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	generateHandler := api.NewGenerateHandler(app.service, app.logger)
	usageHandler := api.NewUsageHandler(app.service, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.config.Auth.JWTSecret)

	r.Route("/api", func(r chi.Router) {
		// Anonymous generation is public by design, bounded by the local
		// anonymous quota.
		r.Post("/generate/anonymous", generateHandler.GenerateAnonymous)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/generate", generateHandler.Generate)
			r.Get("/usage", usageHandler.Usage)
		})
	})

	r.Get("/healthz", api.HealthCheck)

	return r
}
