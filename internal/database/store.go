package database

import (
	"context"

	"gielda-aut/internal/websocket"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore opakowuje klienta Mongo; klient jest wstrzykiwany
// przy konstrukcji, nie ma globalnego uchwytu do bazy.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	wsHub  *websocket.Hub
}

func NewStore(client *mongo.Client, dbName string, wsHub *websocket.Hub) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
		wsHub:  wsHub,
	}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes zakłada indeksy wymagane przez aplikację. Unikalny
// indeks na username zamyka wyścig przy równoległej rejestracji.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.favorites().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "car_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoStore) users() *mongo.Collection {
	return s.db.Collection("users")
}

func (s *MongoStore) cars() *mongo.Collection {
	return s.db.Collection("cars")
}

func (s *MongoStore) events() *mongo.Collection {
	return s.db.Collection("events")
}

func (s *MongoStore) favorites() *mongo.Collection {
	return s.db.Collection("favorites")
}
