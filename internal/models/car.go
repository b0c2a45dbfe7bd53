package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Car struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Brand      string        `bson:"brand" json:"brand"`
	Make       string        `bson:"make" json:"make"`
	Year       int           `bson:"year" json:"year"`
	Cm3        int           `bson:"cm3" json:"cm3"`
	Km         int           `bson:"km" json:"km"`
	Price      int           `bson:"price" json:"price"`
	UserID     string        `bson:"user_id" json:"user_id"`
	PictureURL string        `bson:"picture_url,omitempty" json:"picture_url,omitempty"`
}

// TitleCase normalizuje markę i model ("toyota" -> "Toyota").
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Granice są obustronnie otwarte.
func CheckYear(v int) error {
	if v <= 1970 || v >= 2025 {
		return fmt.Errorf("field 'year' must be between 1971 and 2024, got %d", v)
	}
	return nil
}

func CheckCm3(v int) error {
	if v <= 0 || v >= 5000 {
		return fmt.Errorf("field 'cm3' must be between 1 and 4999, got %d", v)
	}
	return nil
}

func CheckKm(v int) error {
	if v <= 0 || v >= 500000 {
		return fmt.Errorf("field 'km' must be between 1 and 499999, got %d", v)
	}
	return nil
}

func CheckPrice(v int) error {
	if v <= 0 || v >= 100000 {
		return fmt.Errorf("field 'price' must be between 1 and 99999, got %d", v)
	}
	return nil
}

// Validate sprawdza wszystkie pola i normalizuje markę oraz model.
// Wywoływane zanim rekord trafi do bazy.
func (c *Car) Validate() error {
	if c.Brand == "" {
		return fmt.Errorf("field 'brand' cannot be empty")
	}
	if c.Make == "" {
		return fmt.Errorf("field 'make' cannot be empty")
	}
	if err := CheckYear(c.Year); err != nil {
		return err
	}
	if err := CheckCm3(c.Cm3); err != nil {
		return err
	}
	if err := CheckKm(c.Km); err != nil {
		return err
	}
	if err := CheckPrice(c.Price); err != nil {
		return err
	}
	c.Brand = TitleCase(c.Brand)
	c.Make = TitleCase(c.Make)
	return nil
}
