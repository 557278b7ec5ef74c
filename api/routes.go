package api

import (
	"github.com/go-chi/chi/v5"
)

// setupContentRoutes sets up the public read routes
func setupContentRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Blog endpoints
		r.Get("/posts", handlers.contentHandler.getDailyLogs())
		r.Get("/post/{slug}", handlers.contentHandler.getPost())

		// Playbook endpoints
		r.Get("/modules", handlers.contentHandler.getModules())
		r.Get("/module/{slug}", handlers.contentHandler.getModule())

		// Aggregate counters
		r.Get("/leetcode-stats", handlers.contentHandler.getLeetCodeStats())
	})
}
