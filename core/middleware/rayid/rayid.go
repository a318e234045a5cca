package rayid

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// LocalsKey is the fiber.Ctx locals key holding the request id.
	LocalsKey = "ray_id"
	// HeaderName carries the request id in both directions.
	HeaderName = "X-Ray-ID"
)

// New creates a middleware that assigns a RayID to every request. An id sent
// by the client in X-Ray-ID is kept.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.Clone(c.Get(HeaderName))
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)

		err := c.Next()
		c.Set(HeaderName, id)
		return err
	}
}

// FromCtx returns the RayID of the request, or an empty string.
func FromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}
