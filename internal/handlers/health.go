// Package handlers contains the HTTP route handler functions for the
// Equipes API. Each handler corresponds to one endpoint and is responsible
// for reading the request, validating it, performing exactly one store
// operation, and mapping the outcome to a response.
package handlers

import "github.com/gofiber/fiber/v2"

// Ping handles GET /ping.
// It returns a fixed 200 response with no store access — intentionally the
// cheapest possible round-trip. It has two consumers: anyone checking the
// server started correctly, and the service's own keepalive pinger, which
// hits this route on a timer so the hosting platform never sees the process
// as idle.
func Ping(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("pong")
}
