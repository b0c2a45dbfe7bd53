package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Favorite struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	CarID     string        `bson:"car_id" json:"car_id"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
