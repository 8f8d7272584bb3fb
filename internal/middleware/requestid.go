// Package middleware contains HTTP middleware for the Equipes API.
package middleware

// requestid.go — request correlation.
// Every request gets an X-Request-ID: either the one the client sent (so a
// mobile app can correlate its own logs with ours) or a freshly minted UUID.
// Handlers read it back via c.Locals when logging store failures.

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the correlation identifier.
const HeaderRequestID = "X-Request-ID"

// RequestID returns a middleware handler that ensures each request carries a
// request identifier, echoes it on the response, and stores it in the
// request context under "requestID" for downstream handlers.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals("requestID", id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}
