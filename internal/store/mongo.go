package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"techiehelp/internal/logging"
)

// MongoStore keeps chat records in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	settings
}

// NewMongoStore connects to uri and verifies the server is reachable.
func NewMongoStore(ctx context.Context, uri, database, collection string, opts ...Option) (*MongoStore, error) {
	timer := logging.StartTimer(logging.CategoryStore, "NewMongoStore")
	defer timer.Stop()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logging.StoreError("Failed to connect to MongoDB: %v", err)
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		logging.StoreError("MongoDB ping failed: %v", err)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logging.Store("Connected to MongoDB: database=%s collection=%s", database, collection)
	return newMongoStore(client, client.Database(database).Collection(collection), opts...), nil
}

func newMongoStore(client *mongo.Client, coll *mongo.Collection, opts ...Option) *MongoStore {
	return &MongoStore{client: client, coll: coll, settings: defaultSettings(opts)}
}

// Store implements HistoryStore.
func (s *MongoStore) Store(ctx context.Context, query, response string) (ChatRecord, error) {
	rec := s.newRecord(query, response)
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		logging.StoreError("Failed to insert chat record %s: %v", rec.ID, err)
		return ChatRecord{}, fmt.Errorf("insert chat record: %w", err)
	}
	logging.StoreDebug("Stored chat record %s", rec.ID)
	return rec, nil
}

// FetchHistory implements HistoryStore.
func (s *MongoStore) FetchHistory(ctx context.Context) ([]ChatRecord, error) {
	timer := logging.StartTimer(logging.CategoryStore, "MongoStore.FetchHistory")
	defer timer.Stop()

	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		logging.StoreError("Failed to query chat history: %v", err)
		return nil, fmt.Errorf("find chat history: %w", err)
	}
	defer cur.Close(ctx)

	records := []ChatRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode chat history: %w", err)
	}

	logging.StoreDebug("Fetched %d chat records", len(records))
	return records, nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	logging.Store("Closing MongoDB connection")
	return s.client.Disconnect(ctx)
}
