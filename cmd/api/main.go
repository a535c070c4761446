package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wolfman30/slot-booking/internal/api/router"
	"github.com/wolfman30/slot-booking/internal/booking"
	"github.com/wolfman30/slot-booking/internal/cancellation"
	appconfig "github.com/wolfman30/slot-booking/internal/config"
	httpmiddleware "github.com/wolfman30/slot-booking/internal/http/middleware"
	"github.com/wolfman30/slot-booking/internal/observability/metrics"
	"github.com/wolfman30/slot-booking/internal/scriptendpoint"
	"github.com/wolfman30/slot-booking/internal/session"
	"github.com/wolfman30/slot-booking/internal/web"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

const sweepInterval = time.Minute

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.NewWithWriter(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}
	logger.Info("starting slot-booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"timezone", cfg.Timezone,
	)

	metricsHandler, bookingMetrics := setupMetrics()

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Error("failed to parse page templates", "error", err)
		os.Exit(1)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pages, forms := setupSessions(cfg, logger, bookingMetrics)
	go pages.Run(ctx, sweepInterval)
	go forms.Run(ctx, sweepInterval)

	limiter := httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx, sweepInterval)

	// Setup router
	loc := cfg.Location()
	r := router.New(&router.Config{
		Logger:              logger,
		BookingHandler:      booking.NewHandler(pages, renderer, loc, logger),
		CancellationHandler: cancellation.NewHandler(forms, renderer, logger),
		StaticHandler:       web.Static(),
		MetricsHandler:      metricsHandler,
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
		RateLimiter:         limiter,
	})

	// Create HTTP server. WriteTimeout leaves room for a full endpoint round trip.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.EndpointTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	stop()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func setupMetrics() (http.Handler, *metrics.BookingMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewBookingMetrics(reg)
}

// setupSessions builds the per-visitor stores. Every visitor shares one
// endpoint client but owns its own calendar, modal and cancellation form.
func setupSessions(cfg *appconfig.Config, logger *logging.Logger, m *metrics.BookingMetrics) (*session.Store[*booking.Page], *session.Store[*cancellation.Form]) {
	loc := cfg.Location()
	client := scriptendpoint.NewClient(scriptendpoint.Config{
		ReservationURL:  cfg.ReservationEndpointURL,
		CancellationURL: cfg.CancellationEndpointURL,
		Timeout:         cfg.EndpointTimeout,
	}, logger, m)

	pages := session.NewStore(cfg.SessionTTL, func() *booking.Page {
		return booking.NewPage(booking.PageConfig{
			Sender:   client,
			Location: loc,
			Logger:   logger,
			Metrics:  m,
		})
	})
	forms := session.NewStore(cfg.SessionTTL, func() *cancellation.Form {
		return cancellation.NewForm(client, loc, logger, m)
	})
	return pages, forms
}
