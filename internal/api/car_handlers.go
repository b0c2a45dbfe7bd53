package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"gielda-aut/internal/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const carsPerPage = 10

type CarListResponse struct {
	Cars    []models.Car `json:"cars"`
	Page    int          `json:"page"`
	HasMore bool         `json:"has_more"`
}

type UpdateCarRequest struct {
	Brand *string `json:"brand"`
	Make  *string `json:"make"`
	Year  *int    `json:"year"`
	Cm3   *int    `json:"cm3"`
	Km    *int    `json:"km"`
	Price *int    `json:"price"`
}

func formIntValue(r *http.Request, field string) (int, error) {
	value, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return 0, fmt.Errorf("field '%s' must be an integer", field)
	}
	return value, nil
}

// @Summary      Add a new car listing
// @Description  Creates a car listing from a multipart form. The picture is uploaded to the image host before the record is persisted; the owner is taken from the token, never from the form.
// @Tags         cars
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        brand    formData  string  true  "Brand"
// @Param        make     formData  string  true  "Make"
// @Param        year     formData  int     true  "Year of manufacture (1971-2024)"
// @Param        cm3      formData  int     true  "Engine displacement (1-4999)"
// @Param        km       formData  int     true  "Odometer (1-499999)"
// @Param        price    formData  int     true  "Price (1-99999)"
// @Param        picture  formData  file    true  "Picture"
// @Success      201      {object}  models.Car
// @Failure      400      {string}  string "Validation failed"
// @Failure      401      {string}  string "Unauthorized"
// @Failure      502      {string}  string "Image host unreachable"
// @Failure      500      {string}  string "Internal Server Error"
// @Router       /cars [post]
func (s *Server) CreateCarHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 32<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Error parsing multipart form", http.StatusBadRequest)
		return
	}

	car := models.Car{
		Brand: r.FormValue("brand"),
		Make:  r.FormValue("make"),
	}

	var err error
	for field, dst := range map[string]*int{
		"year":  &car.Year,
		"cm3":   &car.Cm3,
		"km":    &car.Km,
		"price": &car.Price,
	} {
		if *dst, err = formIntValue(r, field); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	// Walidacja przed jakimkolwiek I/O.
	if err := car.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	picture, _, err := r.FormFile("picture")
	if err != nil {
		http.Error(w, "Error retrieving the picture", http.StatusBadRequest)
		return
	}
	defer picture.Close()

	// Najpierw hosting zdjęć: bez adresu zdjęcia rekord nie powstaje.
	pictureURL, err := s.storage.Upload(r.Context(), picture)
	if err != nil {
		log.Printf("ERROR: Picture upload failed: %v", err)
		http.Error(w, "Failed to upload picture to image host", http.StatusBadGateway)
		return
	}

	car.UserID = claims.UserID
	car.PictureURL = pictureURL

	created, err := s.store.InsertCar(r.Context(), &car)
	if err != nil {
		log.Printf("ERROR: Failed to insert car for user %s: %v", claims.UserID, err)
		http.Error(w, "Failed to create car", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// @Summary      List car listings
// @Description  Returns one page of the catalog, ordered by creation. has_more tells whether a next page exists.
// @Tags         cars
// @Produce      json
// @Param        page   query     int  false  "Page number, starting at 1"
// @Param        limit  query     int  false  "Page size (default 10)"
// @Success      200    {object}  CarListResponse
// @Failure      400    {string}  string "Invalid paging parameters"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /cars [get]
func (s *Server) ListCarsHandler(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := carsPerPage

	var err error
	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			http.Error(w, "Query parameter 'page' must be an integer >= 1", http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			http.Error(w, "Query parameter 'limit' must be an integer >= 0", http.StatusBadRequest)
			return
		}
	}

	cars, hasMore, err := s.store.ListCars(r.Context(), page, limit)
	if err != nil {
		http.Error(w, "Failed to list cars", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CarListResponse{
		Cars:    cars,
		Page:    page,
		HasMore: hasMore,
	})
}

// @Summary      Get a car by ID
// @Description  Returns a single listing. A malformed identifier is indistinguishable from a missing one.
// @Tags         cars
// @Produce      json
// @Param        carId  path      string  true  "Car ID"
// @Success      200    {object}  models.Car
// @Failure      404    {string}  string "Car not found"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /cars/{carId} [get]
func (s *Server) GetCarHandler(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "carId")

	car, err := s.store.GetCarByID(r.Context(), carID)
	if err != nil {
		http.Error(w, "Failed to retrieve car", http.StatusInternalServerError)
		return
	}
	if car == nil {
		http.Error(w, "Car not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(car)
}

// @Summary      Update a car listing
// @Description  Applies a partial patch; only fields present and non-null in the body are changed. An empty patch returns the record unchanged. Only the owner can update a listing.
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        carId             path      string            true  "Car ID"
// @Param        updateCarRequest  body      UpdateCarRequest  true  "Partial patch"
// @Success      200               {object}  models.Car
// @Failure      400               {string}  string "Validation failed"
// @Failure      401               {string}  string "Unauthorized"
// @Failure      404               {string}  string "Car not found"
// @Failure      500               {string}  string "Internal Server Error"
// @Router       /cars/{carId} [put]
func (s *Server) UpdateCarHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	carID := chi.URLParam(r, "carId")

	var req UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fields := bson.M{}

	if req.Brand != nil {
		if *req.Brand == "" {
			http.Error(w, "field 'brand' cannot be empty", http.StatusBadRequest)
			return
		}
		fields["brand"] = models.TitleCase(*req.Brand)
	}
	if req.Make != nil {
		if *req.Make == "" {
			http.Error(w, "field 'make' cannot be empty", http.StatusBadRequest)
			return
		}
		fields["make"] = models.TitleCase(*req.Make)
	}
	if req.Year != nil {
		if err := models.CheckYear(*req.Year); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fields["year"] = *req.Year
	}
	if req.Cm3 != nil {
		if err := models.CheckCm3(*req.Cm3); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fields["cm3"] = *req.Cm3
	}
	if req.Km != nil {
		if err := models.CheckKm(*req.Km); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fields["km"] = *req.Km
	}
	if req.Price != nil {
		if err := models.CheckPrice(*req.Price); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fields["price"] = *req.Price
	}

	car, err := s.store.UpdateCar(r.Context(), carID, claims.UserID, fields)
	if err != nil {
		http.Error(w, "Failed to update car", http.StatusInternalServerError)
		return
	}
	if car == nil {
		http.Error(w, "Car not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(car)
}

// @Summary      Delete a car listing
// @Description  Removes a listing permanently. Only the owner can delete a listing; a repeated delete reports 404.
// @Tags         cars
// @Security     BearerAuth
// @Param        carId  path  string  true  "Car ID"
// @Success      204    {null}    nil "No Content"
// @Failure      401    {string}  string "Unauthorized"
// @Failure      404    {string}  string "Car not found"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /cars/{carId} [delete]
func (s *Server) DeleteCarHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	carID := chi.URLParam(r, "carId")

	deleted, err := s.store.DeleteCar(r.Context(), carID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to delete car", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Car not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
