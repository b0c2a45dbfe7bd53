package database

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gielda-aut/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// logEvent dopisuje wpis do dziennika zdarzeń i rozgłasza zmianę na
// kanale websocket. Oba kroki są best-effort: błąd nie przerywa
// operacji, która zdarzenie wywołała.
func (s *MongoStore) logEvent(ctx context.Context, action string, car *models.Car) {
	event := models.Event{
		Action:    action,
		CarID:     car.ID.Hex(),
		UserID:    car.UserID,
		CreatedAt: time.Now(),
	}

	if _, err := s.events().InsertOne(ctx, event); err != nil {
		log.Printf("WARN: failed to log %s event for car %s: %v", action, event.CarID, err)
	}

	if s.wsHub != nil {
		message, err := json.Marshal(map[string]interface{}{
			"action": action,
			"car":    car,
		})
		if err != nil {
			log.Printf("WARN: failed to marshal %s event: %v", action, err)
			return
		}
		s.wsHub.Broadcast(message)
	}
}

// GetEventsSince zwraca zdarzenia nowsze niż podany identyfikator,
// rosnąco. Pusty sinceID oznacza cały dziennik.
func (s *MongoStore) GetEventsSince(ctx context.Context, sinceID string) ([]models.Event, error) {
	filter := bson.M{}
	if sinceID != "" {
		oid, err := bson.ObjectIDFromHex(sinceID)
		if err != nil {
			// Nieprawidłowy kursor traktujemy jak brak kursora.
			oid = bson.ObjectID{}
		}
		filter["_id"] = bson.M{"$gt": oid}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.events().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}
