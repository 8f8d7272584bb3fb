package teams

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/equipesapp/equipes-api/internal/models"
)

// collectionName is the single collection this service owns.
const collectionName = "equipes"

// MongoStore implements Store on top of a MongoDB collection.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore creates a store bound to the "equipes" collection of the
// given database. The database handle comes from the client opened once at
// startup — the store never opens connections itself.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(collectionName)}
}

// Compile-time check that MongoStore satisfies the Store interface.
var _ Store = (*MongoStore)(nil)

// Create inserts the equipe and returns the ObjectID MongoDB generated.
func (s *MongoStore) Create(ctx context.Context, equipe models.Equipe) (primitive.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, equipe)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert equipe: %w", err)
	}

	// InsertedID is an interface{}; for documents without a preset _id the
	// driver always fills in an ObjectID.
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return id, nil
}

// ListByOwner scans the collection for documents with a matching userId.
func (s *MongoStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Equipe, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list equipes: %w", err)
	}
	defer cursor.Close(ctx)

	// Start from an empty (non-nil) slice so an owner with no teams
	// serialises as [] rather than null.
	equipes := make([]models.Equipe, 0)
	if err := cursor.All(ctx, &equipes); err != nil {
		return nil, fmt.Errorf("failed to decode equipes: %w", err)
	}
	return equipes, nil
}

// GetByID performs a point lookup on _id.
func (s *MongoStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Equipe, error) {
	var equipe models.Equipe
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&equipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipe: %w", err)
	}
	return &equipe, nil
}

// Update writes the constrained field set with a single conditional $set.
// A zero matched count means the ID (though well-formed) names no document.
func (s *MongoStore) Update(ctx context.Context, id primitive.ObjectID, fields UpdateFields) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":     fields.Name,
		"category": fields.Category,
		"coach":    fields.Coach,
		"athletes": fields.Athletes,
		"liberos":  fields.Liberos,
	}})
	if err != nil {
		return fmt.Errorf("failed to update equipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes at most one document keyed by _id.
func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete equipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
