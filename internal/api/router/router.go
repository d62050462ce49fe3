package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/wolfman30/ondo-handyman/internal/http/middleware"
	"github.com/wolfman30/ondo-handyman/internal/leads"
	"github.com/wolfman30/ondo-handyman/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	// EmailDelivery is reported by /health ("live" or "development").
	EmailDelivery string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck(cfg.EmailDelivery))
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.LeadsHandler != nil {
		r.Route("/contact", func(contact chi.Router) {
			contact.Post("/", cfg.LeadsHandler.Submit)
			contact.Get("/options", cfg.LeadsHandler.Options)
		})
	}

	return r
}

func healthCheck(delivery string) http.HandlerFunc {
	body := map[string]string{"status": "ok"}
	if delivery != "" {
		body["email_delivery"] = delivery
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}
}
