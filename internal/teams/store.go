// Package teams is the data access layer for equipe documents.
//
// The Store interface is what the HTTP handlers depend on — they never touch
// the MongoDB driver directly. Injecting the store (instead of a global
// client) is what lets the handler tests swap in an in-memory double.
package teams

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/equipesapp/equipes-api/internal/models"
)

// UpdateFields is the fixed set of fields an update is allowed to write.
// This is a constrained field-set replace: the document's _id, userId and
// registeredAt are never part of an update. Optional fields not supplied by
// the caller are written as absent/null rather than left at their old value,
// so an update fully describes the roster it leaves behind.
type UpdateFields struct {
	Name     string
	Category string
	Coach    *string
	Athletes []models.Atleta
	Liberos  []models.Atleta
}

// Store defines the persistence operations the handlers need.
// Implementations must return ErrNotFound (possibly wrapped) when a
// Get/Update/Delete matches no document, and a descriptive error for any
// store-level failure — callers never retry, they just report.
type Store interface {
	// Create inserts a new equipe and returns the store-generated ID.
	Create(ctx context.Context, equipe models.Equipe) (primitive.ObjectID, error)

	// ListByOwner returns every equipe whose userId equals ownerID.
	// Order is whatever the store returns — no sort is imposed.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Equipe, error)

	// GetByID returns the equipe with the given ID, or ErrNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Equipe, error)

	// Update replaces the constrained field set on the equipe with the given
	// ID, or returns ErrNotFound if no document matched.
	Update(ctx context.Context, id primitive.ObjectID, fields UpdateFields) error

	// Delete removes the equipe with the given ID, or returns ErrNotFound
	// if nothing was deleted.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
