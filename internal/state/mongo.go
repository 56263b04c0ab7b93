package state

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aoc_companion/internal/config"
)

// MongoStore persists state entries in a MongoDB collection, one document
// per key. Useful when several machines should share one cooldown window and
// solve history.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type stateDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

func NewMongoStore(cfg config.MongoConfig) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Connection))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("can't ping MongoDB: %w", err)
	}

	collection := cfg.Collection
	if collection == "" {
		collection = "companion_state"
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(collection),
	}, nil
}

func (s *MongoStore) Get(key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc stateDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Value, true, nil
}

func (s *MongoStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"value": value}}

	_, err := s.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

func (s *MongoStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
