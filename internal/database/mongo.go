package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps a connected mongo client scoped to one database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	name   string
}

func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(dbName),
		name:   dbName,
	}, nil
}

func (d *DB) Name() string {
	return d.name
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Close(ctx context.Context) error {
	if d.client != nil {
		return d.client.Disconnect(ctx)
	}
	return nil
}

// DropCollections drops each named collection. Dropping a collection that
// does not exist is a no-op for the server, so a fresh database is fine.
func (d *DB) DropCollections(ctx context.Context, names ...string) error {
	for _, name := range names {
		if err := d.db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}
	return nil
}

// InsertBatches writes docs to the collection in chunks of batchSize per
// InsertMany call and returns the number of documents inserted.
func (d *DB) InsertBatches(ctx context.Context, collection string, docs []interface{}, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 1000
	}

	inserted := 0
	for _, chunk := range chunkDocs(docs, batchSize) {
		res, err := d.db.Collection(collection).InsertMany(ctx, chunk)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert batch into %s: %w", collection, err)
		}
		inserted += len(res.InsertedIDs)
	}
	return inserted, nil
}

// CollectIDs reads back every _id in the collection. The seeder uses this
// instead of the InsertMany result so that documents surviving from earlier
// runs are part of the reference pool too.
func (d *DB) CollectIDs(ctx context.Context, collection string) ([]primitive.ObjectID, error) {
	cursor, err := d.db.Collection(collection).Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list ids in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode id in %s: %w", collection, err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error in %s: %w", collection, err)
	}
	return ids, nil
}

func (d *DB) Count(ctx context.Context, collection string) (int64, error) {
	return d.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func chunkDocs(docs []interface{}, size int) [][]interface{} {
	var chunks [][]interface{}
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		chunks = append(chunks, docs[start:end])
	}
	return chunks
}
