// Package server assembles the HTTP routes for the site.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/titans986/waiting-list-site/internal/config"
	"github.com/titans986/waiting-list-site/internal/landing"
	"github.com/titans986/waiting-list-site/internal/middleware"
	"github.com/titans986/waiting-list-site/internal/waitlist"
)

// NewRouter wires the landing page, static assets, health check and the
// registration endpoint.
func NewRouter(cfg *config.Config, logger *logrus.Logger, store waitlist.Store) (http.Handler, error) {
	static, err := landing.Static()
	if err != nil {
		return nil, err
	}
	waitlistHandler := waitlist.NewHandler(store)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)

	// chi answers methods it does not know (PROPFIND, PURGE, ...) here before
	// routing, so the registration path needs its own 405 at the root too.
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", landing.Page)
	r.Handle("/static/*", http.StripPrefix("/static/", static))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
			// Preflights fall through so OPTIONS still gets the endpoint's 405.
			OptionsPassthrough: true,
		}))
		r.MethodNotAllowed(waitlist.MethodNotAllowed)

		// Every method reaches the handler so it can answer 405 itself.
		r.HandleFunc("/register", waitlistHandler.Register)
	})

	return r, nil
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == waitlist.RegisterPath {
		waitlist.MethodNotAllowed(w, r)
		return
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
