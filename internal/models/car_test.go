package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validCar() Car {
	return Car{
		Brand: "toyota",
		Make:  "corolla",
		Year:  2020,
		Cm3:   1800,
		Km:    30000,
		Price: 20000,
	}
}

func TestCarValidate_TitleCasesBrandAndMake(t *testing.T) {
	car := validCar()

	err := car.Validate()
	require.NoError(t, err)
	require.Equal(t, "Toyota", car.Brand)
	require.Equal(t, "Corolla", car.Make)
}

func TestCarValidate_EmptyStrings(t *testing.T) {
	car := validCar()
	car.Brand = ""
	require.Error(t, car.Validate())

	car = validCar()
	car.Make = ""
	require.Error(t, car.Validate())
}

func TestCarValidate_Bounds(t *testing.T) {
	// Granice są obustronnie otwarte: wartość graniczna jest już zła.
	car := validCar()
	car.Year = 1970
	require.Error(t, car.Validate())

	car = validCar()
	car.Year = 2025
	require.Error(t, car.Validate())

	car = validCar()
	car.Year = 1971
	require.NoError(t, car.Validate())

	car = validCar()
	car.Cm3 = 0
	require.Error(t, car.Validate())

	car = validCar()
	car.Cm3 = 5000
	require.Error(t, car.Validate())

	car = validCar()
	car.Km = 0
	require.Error(t, car.Validate())

	car = validCar()
	car.Km = 500000
	require.Error(t, car.Validate())

	car = validCar()
	car.Price = 0
	require.Error(t, car.Validate())

	car = validCar()
	car.Price = 100000
	require.Error(t, car.Validate())
}

func TestCheckFieldHelpers(t *testing.T) {
	require.NoError(t, CheckYear(2024))
	require.Error(t, CheckYear(1800))

	require.NoError(t, CheckCm3(4999))
	require.Error(t, CheckCm3(-10))

	require.NoError(t, CheckKm(499999))
	require.Error(t, CheckKm(600000))

	require.NoError(t, CheckPrice(99999))
	require.Error(t, CheckPrice(-1))
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "Toyota", TitleCase("toyota"))
	require.Equal(t, "Alfa Romeo", TitleCase("alfa romeo"))
	require.Equal(t, "Bmw", TitleCase("bMW"))
}
