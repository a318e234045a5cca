package cors

import (
	"github.com/gofiber/fiber/v2"
)

// Config defines the cross-origin headers attached to every response.
type Config struct {
	// AllowOrigins is the Access-Control-Allow-Origin value.
	AllowOrigins string
	// AllowMethods is the Access-Control-Allow-Methods value.
	AllowMethods string
	// AllowHeaders is the Access-Control-Allow-Headers value.
	AllowHeaders string
}

// ConfigDefault is the permissive policy used for local page testing.
var ConfigDefault = Config{
	AllowOrigins: "*",
	AllowMethods: "GET, POST, OPTIONS",
	AllowHeaders: "Content-Type",
}

// New creates the middleware. Unlike fiber's cors middleware, which only emits
// methods and headers on preflight requests, all three headers are set on every
// response regardless of method or status.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
		if cfg.AllowOrigins == "" {
			cfg.AllowOrigins = ConfigDefault.AllowOrigins
		}
		if cfg.AllowMethods == "" {
			cfg.AllowMethods = ConfigDefault.AllowMethods
		}
		if cfg.AllowHeaders == "" {
			cfg.AllowHeaders = ConfigDefault.AllowHeaders
		}
	}

	return func(c *fiber.Ctx) error {
		err := c.Next()
		// fasthttp's file handler resets the whole response when it fails,
		// so the headers are applied once the chain has returned.
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigins)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)
		return err
	}
}
