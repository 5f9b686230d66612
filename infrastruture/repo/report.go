package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-rover/domain"
	"github.com/beka-birhanu/vinom-rover/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout   = time.Second
	lookupTimeout = 2 * time.Second
)

// ReportRepo handles the persistence of explorations.
type ReportRepo struct {
	collection *mongo.Collection
}

var _ i.ReportRepo = (*ReportRepo)(nil)

// NewReportRepo creates a new ReportRepo with the given MongoDB client, database name, and collection name.
func NewReportRepo(client *mongo.Client, dbName, collectionName string) *ReportRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ReportRepo{
		collection: collection,
	}
}

// Save inserts or replaces an exploration keyed by its ID.
func (r *ReportRepo) Save(ctx context.Context, exploration *dmn.Exploration) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	filter := bson.M{"_id": exploration.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, exploration, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves an exploration by its ID.
// Returns i.ErrExplorationNotFound if no exploration has that ID.
func (r *ReportRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Exploration, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var exploration dmn.Exploration
	if err := r.collection.FindOne(ctx, filter).Decode(&exploration); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrExplorationNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &exploration, nil
}
