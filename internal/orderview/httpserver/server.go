// Package httpserver hosts the order viewer: it adapts HTTP requests into
// fragment-change events for the router and paints the resolved view state
// with server-rendered templates.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/orderview/internal/orderview/orders"
)

// Config holds runtime options for the viewer HTTP server.
type Config struct {
	Address string

	// APIBaseURL points at the order API. When empty and no Service is
	// injected, the built-in demo fixtures are served instead.
	APIBaseURL string

	// Service overrides the backend client; used by tests.
	Service orders.Service

	// HTTPClient overrides the transport used to reach the API.
	HTTPClient orders.HTTPClient

	// ExamplesFile optionally points at a YAML file with example order ids
	// shown as chips on the search page.
	ExamplesFile string

	Logger *zap.Logger
}

// New constructs the HTTP server with its middleware stack and routes.
func New(cfg Config) (*http.Server, error) {
	handlers, err := NewHandlers(cfg)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handlers.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

// Routes assembles the chi router. Every page GET funnels the request into
// the fragment router; mutating endpoints only redirect, so rendering has a
// single code path.
func (h *Handlers) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))
	router.Use(noStore())

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/search", http.StatusSeeOther)
	})
	router.Get("/search", h.SearchPage)
	router.Get("/order/{id}", h.OrderPage)
	router.Get("/list", h.ListPage)
	router.Get("/about", h.AboutPage)

	router.Post("/search", h.SearchSubmit)
	router.Post("/orders/random", h.RandomOrder)

	// Unrecognised locations redirect to the default view.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/search", http.StatusSeeOther)
	})

	return router
}

// noStore returns middleware that disables client-side caching; view state
// is session-scoped on the server.
func noStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store, max-age=0")
			next.ServeHTTP(w, r)
		})
	}
}
