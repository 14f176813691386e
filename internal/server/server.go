package server

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	redisstore "github.com/gofiber/storage/redis/v3"

	"microcat/internal/config"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config

	limiterStorage *redisstore.Storage
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		AppName: "microcat",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"status": "error",
				"error":  message,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))

	s := &Server{App: app, Cfg: cfg}

	if cfg.RateLimitEnabled() {
		limiterCfg := limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"status": "error",
					"error":  "Rate limit exceeded. Please try again later.",
				})
			},
		}

		// Shared counters across replicas when Redis is configured
		if cfg.RedisURL != "" {
			s.limiterStorage = redisstore.New(redisstore.Config{URL: cfg.RedisURL})
			limiterCfg.Storage = s.limiterStorage
			log.Println("Rate limiter using Redis storage")
		}

		app.Use(limiter.New(limiterCfg))
	}

	return s
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	log.Printf("Starting server on %s", s.Cfg.ServerAddr)
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	err := s.App.Shutdown()
	if s.limiterStorage != nil {
		if cerr := s.limiterStorage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
