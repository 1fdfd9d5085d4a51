package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type database struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, verifies the primary is reachable and returns the named database.
func Connect(ctx context.Context, uri, name string) (Database, error) {
	d, err := dial(ctx, uri, name)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(ctx); err != nil {
		_ = d.Disconnect(context.Background())
		return nil, err
	}
	return d, nil
}

// Dial returns the named database without waiting for the server. Only a
// malformed uri fails here; operations fail with model.ErrStoreUnavailable
// until the server is reachable.
func Dial(ctx context.Context, uri, name string) (Database, error) {
	return dial(ctx, uri, name)
}

func dial(ctx context.Context, uri, name string) (*database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, storeError("connect", err)
	}
	return &database{client: client, db: client.Database(name)}, nil
}

func (d *database) Collection(name string) Collection {
	return d.db.Collection(name)
}

func (d *database) CreateIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error {
	if _, err := d.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes on %s: %w", collection, err)
	}
	return nil
}

func (d *database) RunCommand(ctx context.Context, command interface{}) *mongo.SingleResult {
	return d.db.RunCommand(ctx, command)
}

func (d *database) Ping(ctx context.Context) error {
	return storeError("ping", d.client.Ping(ctx, readpref.Primary()))
}

func (d *database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
