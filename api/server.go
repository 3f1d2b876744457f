/*
server.go - Router construction and HTTP server lifecycle

PURPOSE:
  Wires the handlers into a chi router with the standard middleware stack
  and permissive CORS for browser clients, and runs the server with
  graceful shutdown.

SEE ALSO:
  - handlers.go: The handlers being routed
  - cmd/server/main.go: The entry point
*/
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the full route table.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HandleHealth)

		r.Post("/calculate", h.HandleCalculate)
		r.Post("/plan", h.HandlePlan)
		r.Post("/plan/calendar", h.HandlePlanCalendar)
		r.Post("/prefill", h.HandlePrefill)

		r.Get("/holidays/{year}", h.HandleHolidays)
		r.Get("/states/{code}/due-dates", h.HandleStateDueDates)

		r.Get("/scenarios", h.HandleListScenarios)
		r.Get("/scenarios/{name}", h.HandleGetScenario)

		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/", h.HandleSaveSnapshot)
			r.Get("/", h.HandleListSnapshots)
			r.Get("/{id}", h.HandleGetSnapshot)
			r.Delete("/{id}", h.HandleDeleteSnapshot)
			r.Get("/{id}/checklist", h.HandleChecklistState)
			r.Put("/{id}/checklist/{key}", h.HandleSetChecklistItem)
		})
	})

	return r
}

// Server wraps http.Server with graceful shutdown.
type Server struct {
	srv *http.Server
}

// NewServer builds a server listening on addr.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
