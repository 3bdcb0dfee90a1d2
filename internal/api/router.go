package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/koladefi/financial-operations/internal/api/handler"
	"github.com/koladefi/financial-operations/internal/api/middleware"
	"github.com/koladefi/financial-operations/internal/config"
	"github.com/koladefi/financial-operations/internal/idempotency"
	"github.com/koladefi/financial-operations/internal/ratelimit"
	"github.com/koladefi/financial-operations/internal/repository"
	"github.com/koladefi/financial-operations/internal/service"
)

type Router struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *pgxpool.Pool
	repo      *repository.Repository
	limiter   *ratelimit.Limiter
	idemStore *idempotency.Store
	redis     redis.Cmdable
}

func NewRouter(cfg *config.Config, logger *zap.Logger, db *pgxpool.Pool, repo *repository.Repository, limiter *ratelimit.Limiter, idemStore *idempotency.Store, redisClient redis.Cmdable) *Router {
	return &Router{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		repo:      repo,
		limiter:   limiter,
		idemStore: idemStore,
		redis:     redisClient,
	}
}

func (api *Router) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)
	r.Use(middleware.LoggingMiddleware(api.logger))
	r.Use(middleware.RecoverMiddleware(api.logger))
	r.Use(middleware.MetricsMiddleware)

	// Services
	store := repository.NewStore(api.db)
	ledgerSvc := service.NewLedgerService(api.repo, store)
	accountSvc := service.NewAccountService(api.repo)

	// Handlers
	accountHandler := handler.NewAccountHandler(accountSvc)
	transactionHandler := handler.NewTransactionHandler(ledgerSvc)
	healthHandler := handler.NewHealthHandler(api.db, api.redis)

	// Operational endpoints, limited per IP only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.PublicRateLimiter(api.cfg.PublicRateLimitRPS))
		r.Get("/health/live", healthHandler.Live)
		r.Get("/health/ready", healthHandler.Ready)
	})
	r.Handle("/metrics", promhttp.Handler())

	// API routes pass the sliding-window admission check before anything
	// else touches them.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdmissionLimiter(api.limiter))

		r.Post("/api/v1/accounts", accountHandler.CreateAccount)
		r.Get("/api/v1/accounts/{id}", accountHandler.GetAccount)
		r.Post("/api/v1/accounts/{id}/close", accountHandler.CloseAccount)
		r.Get("/api/v1/accounts/{id}/transactions", accountHandler.ListTransactions)

		r.With(middleware.IdempotencyMiddleware(api.idemStore, api.logger)).
			Post("/api/v1/transactions", transactionHandler.SubmitTransaction)
	})

	return r
}
