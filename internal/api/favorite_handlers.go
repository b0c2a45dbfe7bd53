package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// @Summary      Favorite a car listing
// @Description  Adds a listing to the caller's favorites. Adding the same listing twice is a no-op.
// @Tags         favorites
// @Security     BearerAuth
// @Param        carId  path  string  true  "Car ID"
// @Success      204    {null}    nil "No Content"
// @Failure      401    {string}  string "Unauthorized"
// @Failure      404    {string}  string "Car not found"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /cars/{carId}/favorite [post]
func (s *Server) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
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

	if err := s.store.AddFavorite(r.Context(), claims.UserID, car.ID.Hex()); err != nil {
		http.Error(w, "Failed to add favorite", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Unfavorite a car listing
// @Description  Removes a listing from the caller's favorites.
// @Tags         favorites
// @Security     BearerAuth
// @Param        carId  path  string  true  "Car ID"
// @Success      204    {null}    nil "No Content"
// @Failure      401    {string}  string "Unauthorized"
// @Failure      404    {string}  string "Favorite not found"
// @Failure      500    {string}  string "Internal Server Error"
// @Router       /cars/{carId}/favorite [delete]
func (s *Server) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	carID := chi.URLParam(r, "carId")

	removed, err := s.store.RemoveFavorite(r.Context(), claims.UserID, carID)
	if err != nil {
		http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "Favorite not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      List favorited cars
// @Description  Returns all listings the caller has favorited, in creation order.
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Car
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /favorites [get]
func (s *Server) ListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	cars, err := s.store.ListFavoriteCars(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Failed to list favorites", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cars)
}
