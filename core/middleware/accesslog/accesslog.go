package accesslog

import (
	"errors"
	"strings"
	"time"

	"html-deployer/core/console"
	"html-deployer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Config defines the sinks of the access log.
type Config struct {
	// Printer receives one human-readable line per request.
	// When nil, or when it rejects an entry, the request goes to Logger instead.
	Printer *console.Printer
	// Logger is the structured fallback and verbose sink.
	Logger *zap.Logger
	// Verbose adds a debug record with latency, ip and size for every request.
	Verbose bool
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// New creates the access log middleware.
func New(cfg Config) fiber.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return func(c *fiber.Ctx) error {
		start := cfg.Now()
		err := c.Next()

		entry := console.Request{
			Time:   cfg.Now(),
			// fasthttp reuses the request buffers once the handler returns
			Method: strings.Clone(c.Method()),
			Path:   strings.Clone(c.Path()),
			Status: statusOf(c, err),
		}

		l := logger.WithRayID(cfg.Logger, c)
		if cfg.Printer == nil || !cfg.Printer.Request(entry) {
			l.Info("Request",
				zap.String("method", entry.Method),
				zap.String("path", entry.Path),
				zap.Int("status", entry.Status),
			)
		}

		if cfg.Verbose {
			// Reading Body() would drain a streamed file into memory
			size := c.Response().Header.ContentLength()
			if !c.Response().IsBodyStream() {
				size = len(c.Response().Body())
			}
			l.Debug("Request completed",
				zap.String("method", entry.Method),
				zap.String("path", entry.Path),
				zap.Int("status", entry.Status),
				zap.String("ip", c.IP()),
				zap.Int("bytes", size),
				zap.Duration("latency", entry.Time.Sub(start)),
			)
		}
		return err
	}
}

// statusOf returns the status the client will see. Errors are turned into a
// response by the error handler after the middleware chain has returned.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
