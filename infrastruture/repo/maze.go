package repo

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/mazegen-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMazeNotFound is returned when no maze record matches the id.
var ErrMazeNotFound = errors.New("repo: maze not found")

// MazeRepo stores generated mazes in a MongoDB collection. The document
// carries the generation parameters and the flattened wall grid; images
// are derived from it on demand.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a MazeRepo over the named database and collection.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save upserts a maze record keyed by id.
func (m *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"width":     record.Width,
			"height":    record.Height,
			"algorithm": record.Algorithm,
			"seed":      record.Seed,
			"cells":     record.Cells,
			"entrance":  record.Entrance,
			"exit":      record.Exit,
			"createdAt": record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := m.collection.UpdateOne(ctx, bson.M{"_id": record.ID}, update, opts); err != nil {
		return fmt.Errorf("repo: saving maze %s: %w", record.ID, err)
	}

	return nil
}

// ByID fetches a maze record by id.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), findTimeout)
	defer cancel()

	var record dmn.MazeRecord
	if err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrMazeNotFound, id)
		}
		return nil, fmt.Errorf("repo: fetching maze %s: %w", id, err)
	}
	return &record, nil
}
