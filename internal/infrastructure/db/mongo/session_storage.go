package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const sessionCollection = "console_sessions"

// MongoStorage keeps one document per key in the console_sessions collection.
type MongoStorage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewStorage(client *mongo.Client, db *mongo.Database) *MongoStorage {
	return &MongoStorage{client: client, coll: db.Collection(sessionCollection)}
}

type mongoEntry struct {
	Key       string `bson:"_id"`
	Value     []byte `bson:"value"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *MongoStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var e mongoEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStorageKeyNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return e.Value, nil
}

// Set replaces the whole document so readers never see a partial write.
func (r *MongoStorage) Set(ctx context.Context, key string, value []byte) error {
	doc := mongoEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC().Unix()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("replace entry: %w", err)
	}
	return nil
}

func (r *MongoStorage) Delete(ctx context.Context, key string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (r *MongoStorage) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}
