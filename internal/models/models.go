// Package models defines the data structures that map to MongoDB documents.
// MongoDB stores documents (not rows), so instead of ORM column tags each
// field carries a `bson` tag telling the driver how to serialise it, plus a
// `json` tag controlling what the mobile app sees on the wire.
//
// The data model is deliberately tiny: one collection ("equipes") of team
// roster documents. Each document belongs to the user who registered it —
// the userId is an opaque token the app sends with every create request.
package models

import (
	"time"

	// primitive provides ObjectID — MongoDB's native 12-byte document
	// identifier, rendered on the wire as a 24-character hex string.
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Atleta is a free-form athlete descriptor. The app owns its shape (name,
// jersey number, position, whatever it needs) and the server stores it
// verbatim — no field of an athlete is validated or interpreted here.
type Atleta map[string]any

// Equipe is one registered volleyball team roster.
type Equipe struct {
	// ID is assigned by MongoDB on insert ("omitempty" lets the driver
	// generate it). Clients only ever see its hex form and round-trip it.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// UserID identifies the owner. It is set once at creation and never
	// touched by updates; listing filters on exact equality against it.
	UserID string `bson:"userId" json:"userId"`

	// Name and Category are the two required fields — validation guarantees
	// they are non-empty for every document that reaches the store.
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`

	// Coach is optional. A pointer (without "omitempty") keeps the
	// distinction between "not supplied" and "empty string" and serialises
	// as null when absent, which is what the app expects.
	Coach *string `bson:"coach" json:"coach"`

	// Athletes and Liberos are stored opaquely — the store imposes no schema
	// on the descriptors themselves.
	Athletes []Atleta `bson:"athletes,omitempty" json:"athletes,omitempty"`
	Liberos  []Atleta `bson:"liberos,omitempty" json:"liberos,omitempty"`

	// RegisteredAt is assigned by the server at creation time. It is never
	// read from the request body and never changed afterwards.
	RegisteredAt time.Time `bson:"registeredAt" json:"registeredAt"`
}
