package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EventCarCreated = "car_created"
	EventCarUpdated = "car_updated"
	EventCarDeleted = "car_deleted"
)

type Event struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    string        `bson:"action" json:"action"`
	CarID     string        `bson:"car_id" json:"car_id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
