package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gielda-aut/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Funkcje pomocnicze do testów handlerów.

func withTestClaims(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), userContextKey, testUserClaims))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newCarForm(t *testing.T, fields map[string]string, withPicture bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withPicture {
		part, err := writer.CreateFormFile("picture", "car.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validCarFields() map[string]string {
	return map[string]string{
		"brand": "toyota",
		"make":  "corolla",
		"year":  "2020",
		"cm3":   "1800",
		"km":    "30000",
		"price": "20000",
	}
}

func createTestCarAPI(t *testing.T, ownerID string) *models.Car {
	car := &models.Car{
		Brand:      "Toyota",
		Make:       "Corolla",
		Year:       2020,
		Cm3:        1800,
		Km:         30000,
		Price:      20000,
		UserID:     ownerID,
		PictureURL: "https://img.test/cars/fixed.jpg",
	}
	created, err := testStore.InsertCar(context.Background(), car)
	require.NoError(t, err)
	return created
}

func TestAPI_CreateCar_Success(t *testing.T) {
	// Arrange
	body, contentType := newCarForm(t, validCarFields(), true)
	req := httptest.NewRequest("POST", "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	// Act
	req = withTestClaims(req)
	http.HandlerFunc(testServer.CreateCarHandler).ServeHTTP(rr, req)

	// Assert
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.Car
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "Toyota", created.Brand)
	require.Equal(t, "Corolla", created.Make)
	require.Equal(t, 2020, created.Year)
	require.Equal(t, testImageStore.url, created.PictureURL)
	// Właściciel pochodzi z tokenu, nie z formularza.
	require.Equal(t, testUserClaims.UserID, created.UserID)
	require.False(t, created.ID.IsZero())
}

func TestAPI_CreateCar_ValidationFailure(t *testing.T) {
	fields := validCarFields()
	fields["year"] = "1800"
	body, contentType := newCarForm(t, fields, true)
	req := httptest.NewRequest("POST", "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	req = withTestClaims(req)
	http.HandlerFunc(testServer.CreateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "year")
}

func TestAPI_CreateCar_NonIntegerField(t *testing.T) {
	fields := validCarFields()
	fields["price"] = "drogo"
	body, contentType := newCarForm(t, fields, true)
	req := httptest.NewRequest("POST", "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	req = withTestClaims(req)
	http.HandlerFunc(testServer.CreateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "price")
}

func TestAPI_CreateCar_MissingPicture(t *testing.T) {
	body, contentType := newCarForm(t, validCarFields(), false)
	req := httptest.NewRequest("POST", "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	req = withTestClaims(req)
	http.HandlerFunc(testServer.CreateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_CreateCar_UploadFailure(t *testing.T) {
	testImageStore.err = errors.New("image host is down")
	defer func() { testImageStore.err = nil }()

	body, contentType := newCarForm(t, validCarFields(), true)
	req := httptest.NewRequest("POST", "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	req = withTestClaims(req)
	http.HandlerFunc(testServer.CreateCarHandler).ServeHTTP(rr, req)

	// Awaria hostingu zdjęć przerywa tworzenie rekordu.
	require.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestAPI_ListCars(t *testing.T) {
	createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("GET", "/api/v1/cars?page=1&limit=5", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.ListCarsHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp CarListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Page)
	require.NotEmpty(t, resp.Cars)
	require.LessOrEqual(t, len(resp.Cars), 5)
}

func TestAPI_ListCars_InvalidPaging(t *testing.T) {
	for _, query := range []string{"?page=0", "?page=-3", "?page=abc", "?limit=-1", "?limit=xyz"} {
		req := httptest.NewRequest("GET", "/api/v1/cars"+query, nil)
		rr := httptest.NewRecorder()
		http.HandlerFunc(testServer.ListCarsHandler).ServeHTTP(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code, "query %s should be rejected", query)
	}
}

func TestAPI_GetCar(t *testing.T) {
	created := createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("GET", "/api/v1/cars/"+created.ID.Hex(), nil)
	req = withURLParam(req, "carId", created.ID.Hex())
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.GetCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var found models.Car
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &found))
	require.Equal(t, created.ID, found.ID)
}

func TestAPI_GetCar_NotFound(t *testing.T) {
	// Nieistniejący rekord i zły format ID dają ten sam wynik.
	for _, carID := range []string{"64f1c2ab9d1e4a0001b2c3d9", "not-an-object-id"} {
		req := httptest.NewRequest("GET", "/api/v1/cars/"+carID, nil)
		req = withURLParam(req, "carId", carID)
		rr := httptest.NewRecorder()
		http.HandlerFunc(testServer.GetCarHandler).ServeHTTP(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code)
	}
}

func TestAPI_UpdateCar_PartialPatch(t *testing.T) {
	created := createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("PUT", "/api/v1/cars/"+created.ID.Hex(), strings.NewReader(`{"price": 18500}`))
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.UpdateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Car
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.Equal(t, 18500, updated.Price)
	require.Equal(t, created.Brand, updated.Brand)
	require.Equal(t, created.Year, updated.Year)
}

func TestAPI_UpdateCar_EmptyPatchIsNoop(t *testing.T) {
	created := createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("PUT", "/api/v1/cars/"+created.ID.Hex(), strings.NewReader(`{}`))
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.UpdateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var unchanged models.Car
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &unchanged))
	require.Equal(t, created.Price, unchanged.Price)
	require.Equal(t, created.Brand, unchanged.Brand)
}

func TestAPI_UpdateCar_TitleCasesPatch(t *testing.T) {
	created := createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("PUT", "/api/v1/cars/"+created.ID.Hex(), strings.NewReader(`{"brand": "honda"}`))
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.UpdateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Car
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.Equal(t, "Honda", updated.Brand)
}

func TestAPI_UpdateCar_OutOfBoundsField(t *testing.T) {
	created := createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("PUT", "/api/v1/cars/"+created.ID.Hex(), strings.NewReader(`{"km": 999999}`))
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.UpdateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "km")
}

func TestAPI_UpdateCar_ForeignCar(t *testing.T) {
	// Ogłoszenie innego użytkownika zachowuje się jak nieistniejące.
	created := createTestCarAPI(t, "64f1c2ab9d1e4a0001b2c3ff")

	req := httptest.NewRequest("PUT", "/api/v1/cars/"+created.ID.Hex(), strings.NewReader(`{"price": 100}`))
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.UpdateCarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_DeleteCar(t *testing.T) {
	created := createTestCarAPI(t, testUserClaims.UserID)

	req := httptest.NewRequest("DELETE", "/api/v1/cars/"+created.ID.Hex(), nil)
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.DeleteCarHandler).ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Powtórny delete tego samego ogłoszenia.
	req = httptest.NewRequest("DELETE", "/api/v1/cars/"+created.ID.Hex(), nil)
	req = withTestClaims(withURLParam(req, "carId", created.ID.Hex()))
	rr = httptest.NewRecorder()
	http.HandlerFunc(testServer.DeleteCarHandler).ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
