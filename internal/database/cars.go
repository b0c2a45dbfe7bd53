package database

import (
	"context"
	"errors"

	"gielda-aut/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *MongoStore) InsertCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	result, err := s.cars().InsertOne(ctx, car)
	if err != nil {
		return nil, err
	}

	car.ID = result.InsertedID.(bson.ObjectID)
	s.logEvent(ctx, models.EventCarCreated, car)
	return car, nil
}

// ListCars stronicuje katalog posortowany rosnąco po _id, czyli w
// kolejności utworzenia. Licznik i zapytanie listujące używają tego
// samego (pustego) filtra; drobny dryf między nimi przy równoległych
// zapisach jest akceptowany.
func (s *MongoStore) ListCars(ctx context.Context, page, limit int) ([]models.Car, bool, error) {
	total, err := s.cars().CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, false, err
	}

	hasMore := int64(page*limit) < total

	// Limit 0 w Mongo oznacza brak limitu, więc pustą stronę
	// zwracamy bez dotykania kursora.
	if limit == 0 {
		return []models.Car{}, hasMore, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.cars().Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, false, err
	}

	cars := []models.Car{}
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, false, err
	}

	return cars, hasMore, nil
}

// GetCarByID zwraca nil, nil zarówno dla nieistniejącego rekordu jak
// i nieprawidłowego formatu identyfikatora.
func (s *MongoStore) GetCarByID(ctx context.Context, id string) (*models.Car, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var car models.Car
	err = s.cars().FindOne(ctx, bson.M{"_id": oid}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &car, nil
}

// UpdateCar nakłada częściową aktualizację na ogłoszenie należące do
// userID. Pusty zestaw pól to odczyt bez zmian. Cudze ogłoszenie
// zachowuje się jak nieistniejące.
func (s *MongoStore) UpdateCar(ctx context.Context, id, userID string, fields bson.M) (*models.Car, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	filter := bson.M{"_id": oid, "user_id": userID}

	var car models.Car
	if len(fields) == 0 {
		err = s.cars().FindOne(ctx, filter).Decode(&car)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = s.cars().FindOneAndUpdate(ctx, filter, bson.M{"$set": fields}, opts).Decode(&car)
	}

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	if len(fields) > 0 {
		s.logEvent(ctx, models.EventCarUpdated, &car)
	}
	return &car, nil
}

func (s *MongoStore) DeleteCar(ctx context.Context, id, userID string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.cars().DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return false, err
	}

	if result.DeletedCount != 1 {
		return false, nil
	}

	s.logEvent(ctx, models.EventCarDeleted, &models.Car{ID: oid, UserID: userID})
	return true, nil
}
