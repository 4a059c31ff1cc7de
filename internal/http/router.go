package http

import (
	"bookmanager/internal/book"
	"bookmanager/internal/httpx"
	"log/slog"
	"net/http"
)

// RouterConfig holds the middleware settings for NewRouter.
type RouterConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	EnableHSTS     bool
	RateLimiter    *httpx.RateLimitMiddleware
	Logger         *slog.Logger
}

// NewRouter wires the page, the JSON API and the health check behind the
// shared middleware chain.
func NewRouter(manager *book.Manager, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	NewPageHandler(manager, logger).Register(router)
	book.NewHTTPHandler(manager).Register(router)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	}
	if cfg.RateLimiter != nil {
		middlewares = append(middlewares, cfg.RateLimiter.Middleware)
	}
	if cfg.MaxBodyBytes > 0 {
		middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	}

	return httpx.Chain(router, middlewares...)
}
