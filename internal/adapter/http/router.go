package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tiendanorte/ledger/internal/adapter/http/handler"
	"github.com/tiendanorte/ledger/internal/adapter/http/middleware"
	"github.com/tiendanorte/ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler    *handler.AccountHandler
	EntryHandler      *handler.EntryHandler
	LedgerHandler     *handler.LedgerHandler
	ReceivableHandler *handler.ReceivableHandler
	RateHandler       *handler.RateHandler
	HealthHandler     *handler.HealthHandler
	IdempotencyStore  usecase.IdempotencyStore
	RateLimiter       *middleware.RateLimiter
	LoggingMiddleware *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.LoggingMiddleware != nil {
		r.Use(cfg.LoggingMiddleware.Wrap)
	}
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Chart of accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Patch("/{id}/active", cfg.AccountHandler.SetActive)
		})

		// Journal entries
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", cfg.EntryHandler.Create)
			r.Get("/", cfg.EntryHandler.List)
			r.Get("/{id}", cfg.EntryHandler.Get)
			r.Delete("/{id}", cfg.EntryHandler.Delete)
		})

		// Ledger queries
		r.Get("/movements", cfg.LedgerHandler.ListMovements)
		r.Get("/balances", cfg.LedgerHandler.GetBalances)
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)

		// Exchange rates
		r.Route("/rates", func(r chi.Router) {
			r.Get("/current", cfg.RateHandler.GetCurrent)
			r.Put("/current", cfg.RateHandler.SetCurrent)
		})

		// Receivable sub-ledger
		r.Route("/receivables", func(r chi.Router) {
			r.Get("/statistics", cfg.ReceivableHandler.GetStatistics)

			r.Patch("/movements/{id}", cfg.ReceivableHandler.Edit)
			r.Delete("/movements/{id}", cfg.ReceivableHandler.Delete)

			r.Route("/{counterparty}", func(r chi.Router) {
				r.Post("/charges", cfg.ReceivableHandler.RegisterCharge)
				r.Post("/payments-received", cfg.ReceivableHandler.RegisterPaymentReceived)
				r.Post("/payments-made", cfg.ReceivableHandler.RegisterPaymentMade)
				r.Post("/debts-taken", cfg.ReceivableHandler.RegisterDebtTaken)
				r.Get("/balance", cfg.ReceivableHandler.GetBalance)
				r.Get("/movements", cfg.ReceivableHandler.ListMovements)
			})
		})
	})

	return r
}
