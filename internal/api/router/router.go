package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/cancellation"
	httpmiddleware "github.com/wolfman30/slot-booking/internal/http/middleware"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	BookingHandler      *booking.Handler
	CancellationHandler *cancellation.Handler
	StaticHandler       http.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string

	// Applied to state-changing API calls only (optional)
	RateLimiter *httpmiddleware.RateLimiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.StaticHandler != nil {
		r.Handle("/static/*", http.StripPrefix("/static", cfg.StaticHandler))
	}

	limit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Middleware
	}

	if h := cfg.BookingHandler; h != nil {
		r.Get("/", h.ServePage)
		r.Route("/api/booking", func(r chi.Router) {
			r.Get("/events", h.ListEvents)
			r.Get("/slots", h.ListSlots)
			r.Get("/modal", h.GetModal)
			r.Group(func(r chi.Router) {
				r.Use(limit)
				r.Post("/selections", h.Select)
				r.Post("/reservations", h.Submit)
				r.Post("/modal/close", h.CloseModal)
			})
		})
	}

	if h := cfg.CancellationHandler; h != nil {
		r.Get("/cancel", h.ServePage)
		r.Route("/api/cancellations", func(r chi.Router) {
			r.Get("/time-options", h.ListTimeOptions)
			r.Get("/form", h.GetForm)
			r.With(limit).Post("/", h.Submit)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
