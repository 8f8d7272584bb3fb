// Package handlers contains HTTP route handler functions for the Equipes API.
// This file handles the /equipes routes — registering, listing, fetching,
// updating and deleting team rosters.
//
// Each exported function follows the "handler factory" pattern: it takes a
// teams.Store and returns a fiber.Handler (a function that handles a single
// HTTP request). This lets us inject the store without global variables, and
// lets the tests substitute an in-memory store for MongoDB.
//
// --- Failure classes ---
// Three classes of failure exist and are never collapsed into one:
//
//  1. Validation (400): missing required field or malformed identifier.
//     Checked synchronously BEFORE any store round-trip — malformed input
//     never reaches MongoDB.
//  2. Not found (404): a well-formed identifier that names no document.
//     Detected by the store (zero matched/deleted documents).
//  3. Store failure (500): the operation itself failed. The response body
//     carries the underlying error string for diagnosis; nothing is retried.
//
// Response messages are the ones the mobile app already displays, so they
// stay in Portuguese.
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/equipesapp/equipes-api/internal/models"
	"github.com/equipesapp/equipes-api/internal/teams"
)

// EquipeRequest is the JSON body we expect on POST /equipes and
// PUT /equipes/:id. A dedicated request struct (instead of the raw model)
// means a client can never smuggle in server-owned fields: there is simply
// no id or registeredAt to parse.
type EquipeRequest struct {
	Name     string          `json:"name"`     // Required: team display name
	Category string          `json:"category"` // Required: competition category, e.g. "Sub-17"
	Coach    *string         `json:"coach"`    // Optional: coach name; null when not supplied
	Athletes []models.Atleta `json:"athletes"` // Optional: free-form athlete descriptors
	Liberos  []models.Atleta `json:"liberos"`  // Optional: free-form libero descriptors
	UserID   string          `json:"userId"`   // Required on create: opaque owner token
}

// parseObjectID converts the :id route parameter into an ObjectID.
// ObjectIDFromHex rejects anything that is not exactly 24 hex characters,
// which is the whole identifier-validity check — it runs before any store
// call, keeping "bad identifier" (400) separate from "no such record" (404).
func parseObjectID(c *fiber.Ctx) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	return id, err == nil
}

// storeFailure logs a failed store operation and writes the 500 response.
// The underlying error is included in the body so a failing deployment can
// be diagnosed from the app side, matching the service's existing contract.
func storeFailure(c *fiber.Ctx, msg string, err error) error {
	log.Error().
		Err(err).
		Str("requestID", requestID(c)).
		Str("path", c.Path()).
		Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": msg,
		"error":   err.Error(),
	})
}

// requestID reads the correlation ID set by the RequestID middleware.
func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestID").(string)
	return id
}

// CreateEquipe returns a handler for POST /equipes.
// Validates the required fields, stamps the server-owned ones, and performs
// a single insert. Responds 201 with the new document's hex ID.
func CreateEquipe(store teams.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req EquipeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Corpo da requisição inválido.",
			})
		}

		// Required-field validation happens here, before any I/O. The store
		// itself is schema-free — this is the only gate.
		if req.Name == "" || req.Category == "" || req.UserID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Dados incompletos. name, category e userId são obrigatórios.",
			})
		}

		equipe := models.Equipe{
			UserID:   req.UserID,
			Name:     req.Name,
			Category: req.Category,
			Coach:    req.Coach,
			Athletes: req.Athletes,
			Liberos:  req.Liberos,
			// Server-assigned; a registeredAt in the request body is
			// ignored because EquipeRequest has no such field.
			RegisteredAt: time.Now().UTC(),
		}

		id, err := store.Create(c.Context(), equipe)
		if err != nil {
			return storeFailure(c, "Erro ao cadastrar equipe", err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Equipe cadastrada com sucesso!",
			"insertedId": id.Hex(),
		})
	}
}

// ListEquipesByOwner returns a handler for GET /equipes/:userId.
// Only records whose userId matches the route parameter are visible —
// ownership scoping by exact equality, nothing more. The userId is an
// opaque caller-supplied token; it is deliberately not authenticated.
func ListEquipesByOwner(store teams.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		if userID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "userId é obrigatório",
			})
		}

		equipes, err := store.ListByOwner(c.Context(), userID)
		if err != nil {
			return storeFailure(c, "Erro ao buscar equipes", err)
		}

		// An owner with no teams gets 200 with an empty array, not 404 —
		// the listing itself succeeded.
		return c.Status(fiber.StatusOK).JSON(equipes)
	}
}

// GetEquipe returns a handler for GET /equipes/details/:id.
// The "details" segment keeps this route from colliding with the
// by-owner listing above.
func GetEquipe(store teams.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseObjectID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "ID inválido",
			})
		}

		equipe, err := store.GetByID(c.Context(), id)
		if errors.Is(err, teams.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Equipe não encontrada",
			})
		}
		if err != nil {
			return storeFailure(c, "Erro ao buscar equipe", err)
		}

		return c.Status(fiber.StatusOK).JSON(equipe)
	}
}

// UpdateEquipe returns a handler for PUT /equipes/:id.
//
// Update semantics: constrained field-set replace. The request is validated
// exactly like a create (minus userId) and then name, category, coach,
// athletes and liberos are written as a unit — optional fields the caller
// left out become null/absent. The document's _id, userId and registeredAt
// are never touched, so ownership and the registration timestamp survive
// every update.
func UpdateEquipe(store teams.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseObjectID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "ID inválido",
			})
		}

		var req EquipeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Corpo da requisição inválido.",
			})
		}

		// Revalidating here keeps the invariant that a stored equipe never
		// has an empty name or category, no matter how many updates it saw.
		if req.Name == "" || req.Category == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Dados incompletos. name e category são obrigatórios.",
			})
		}

		err := store.Update(c.Context(), id, teams.UpdateFields{
			Name:     req.Name,
			Category: req.Category,
			Coach:    req.Coach,
			Athletes: req.Athletes,
			Liberos:  req.Liberos,
		})
		if errors.Is(err, teams.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Equipe não encontrada.",
			})
		}
		if err != nil {
			return storeFailure(c, "Erro ao atualizar equipe", err)
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Equipe atualizada com sucesso!",
		})
	}
}

// DeleteEquipe returns a handler for DELETE /equipes/:id.
// Deleting an already-deleted ID returns 404 again — repetition never
// changes the answer, and never errors differently.
func DeleteEquipe(store teams.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseObjectID(c)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "ID inválido",
			})
		}

		err := store.Delete(c.Context(), id)
		if errors.Is(err, teams.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Equipe não encontrada.",
			})
		}
		if err != nil {
			return storeFailure(c, "Erro ao excluir equipe", err)
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Equipe excluída com sucesso!",
		})
	}
}
