package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopconnect/internal/config"
	"shopconnect/internal/domain"
	"shopconnect/internal/http/handlers"
	applog "shopconnect/internal/log"
	"shopconnect/internal/repos"
	"shopconnect/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Anything escaping the handlers still answers as an envelope.
			applog.Error(c, "server.error", err, nil)
			apiErr := services.AsAPIError(err)
			return c.JSON(domain.Envelope{
				Version: "1.1",
				Error:   &domain.RPCError{Name: "Exception", Code: apiErr.Code, Message: apiErr.Message},
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz"
		},
	}))

	// ---------- Gateway endpoint ----------
	deps := handlers.NewDeps(db, cfg)

	// Verb-agnostic: the request document travels in the "request" body or
	// query parameter regardless of the HTTP method.
	app.All("/api", deps.API.Serve)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	})

	applog.Info(nil, "server.start", map[string]any{"port": cfg.Port, "shop": cfg.ShopID})
	log.Fatal(app.Listen(":" + cfg.Port))
}
