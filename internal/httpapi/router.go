// Package httpapi is the demo HTTP server wrapping a sieve.Sieve: it
// exists to exercise the domain stack end to end the way the teacher's
// internal/http package exercises its own services, not as part of the
// aggregation library's core contract.
package httpapi

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ncecere/sieve"
	"github.com/ncecere/sieve/internal/config"
	"github.com/ncecere/sieve/internal/metrics"
)

// Server wraps a fiber.App configured to serve one Sieve.
type Server struct {
	app    *fiber.App
	config *config.Config
	sv     *sieve.Sieve
	logger *slog.Logger
}

// NewServer builds a Server over an already-configured Sieve, wiring
// request logging, metrics, health, and (when configured) Redis-backed
// rate limiting.
func NewServer(cfg *config.Config, sv *sieve.Sieve, logger *slog.Logger) *Server {
	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		c.Locals("sieve", sv)
		return c.Next()
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := c.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals("request_id", reqID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()
		path := c.Path()

		metrics.RecordRequest(method, path, status, latency.Milliseconds())

		if logger != nil {
			logger.Info("request",
				"request_id", reqID,
				"method", method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		}

		return err
	})

	var rdb *redis.Client
	if cfg.RateLimit.Enabled && cfg.Redis.URL != "" {
		if opt, err := redis.ParseURL(cfg.Redis.URL); err == nil {
			rdb = redis.NewClient(opt)
		}
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/metrics", func(c *fiber.Ctx) error {
		c.Type("text/plain")
		return c.SendString(metrics.Export())
	})

	var rateMw fiber.Handler
	if rdb != nil {
		rateMw = rateLimitMiddleware(cfg, rdb)
	} else {
		rateMw = func(c *fiber.Ctx) error { return c.Next() }
	}

	v1 := app.Group("/v1", rateMw)
	v1.Post("/search", searchHandler)

	return &Server{app: app, config: cfg, sv: sv, logger: logger}
}

// Listen starts serving on the configured host:port.
func (s *Server) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	return s.app.Listen(addr)
}
