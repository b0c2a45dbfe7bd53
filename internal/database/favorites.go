package database

import (
	"context"
	"time"

	"gielda-aut/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// AddFavorite jest idempotentne: powtórne dodanie tego samego
// ogłoszenia kończy się sukcesem dzięki unikalnemu indeksowi.
func (s *MongoStore) AddFavorite(ctx context.Context, userID, carID string) error {
	favorite := models.Favorite{
		UserID:    userID,
		CarID:     carID,
		CreatedAt: time.Now(),
	}

	_, err := s.favorites().InsertOne(ctx, favorite)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}

func (s *MongoStore) RemoveFavorite(ctx context.Context, userID, carID string) (bool, error) {
	result, err := s.favorites().DeleteOne(ctx, bson.M{"user_id": userID, "car_id": carID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount == 1, nil
}

// ListFavoriteCars zwraca ogłoszenia polubione przez użytkownika w
// kolejności utworzenia ogłoszeń. Ulubione wskazujące na usunięte
// ogłoszenia są pomijane.
func (s *MongoStore) ListFavoriteCars(ctx context.Context, userID string) ([]models.Car, error) {
	cursor, err := s.favorites().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	favorites := []models.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}

	carIDs := make([]bson.ObjectID, 0, len(favorites))
	for _, favorite := range favorites {
		oid, err := bson.ObjectIDFromHex(favorite.CarID)
		if err != nil {
			continue
		}
		carIDs = append(carIDs, oid)
	}

	if len(carIDs) == 0 {
		return []models.Car{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	carCursor, err := s.cars().Find(ctx, bson.M{"_id": bson.M{"$in": carIDs}}, opts)
	if err != nil {
		return nil, err
	}

	cars := []models.Car{}
	if err := carCursor.All(ctx, &cars); err != nil {
		return nil, err
	}

	return cars, nil
}
