package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gielda-aut/internal/auth"

	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, username, password string) *httptest.ResponseRecorder {
	payload := RegisterRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/users/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.RegisterHandler).ServeHTTP(rr, req)
	return rr
}

func TestAPI_Register_Success(t *testing.T) {
	rr := registerUser(t, "rejestracja_ok", "password123")

	require.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, "rejestracja_ok", response["username"])
	require.NotEmpty(t, response["id"])
	// Hasło nigdy nie wraca w odpowiedzi.
	_, hasPassword := response["password"]
	require.False(t, hasPassword)
}

func TestAPI_Register_Duplicate(t *testing.T) {
	rr := registerUser(t, "duplikat", "password123")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = registerUser(t, "duplikat", "innehaslo")
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestAPI_Register_UsernameLength(t *testing.T) {
	rr := registerUser(t, "ab", "password123")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = registerUser(t, "zdecydowanie_za_dluga_nazwa", "password123")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_Register_EmptyPassword(t *testing.T) {
	rr := registerUser(t, "bez_hasla", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_Login_Success(t *testing.T) {
	rr := registerUser(t, "login_user", "password123")
	require.Equal(t, http.StatusCreated, rr.Code)

	payload := LoginRequest{Username: "login_user", Password: "password123"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/users/login", bytes.NewReader(body))
	loginRR := httptest.NewRecorder()
	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(loginRR, req)

	require.Equal(t, http.StatusOK, loginRR.Code)
	var response TokenResponse
	require.NoError(t, json.Unmarshal(loginRR.Body.Bytes(), &response))
	require.Equal(t, "login_user", response.Username)

	claims, err := auth.VerifyJWT(response.Token, testJWTSecret)
	require.NoError(t, err)
	require.Equal(t, "login_user", claims.Username)
	require.NotEmpty(t, claims.UserID)
}

func TestAPI_Login_BadCredentials(t *testing.T) {
	rr := registerUser(t, "zle_haslo", "password123")
	require.Equal(t, http.StatusCreated, rr.Code)

	// Złe hasło i nieznany użytkownik dają ten sam komunikat.
	for _, payload := range []LoginRequest{
		{Username: "zle_haslo", Password: "wrong"},
		{Username: "nieistnieje", Password: "password123"},
	} {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/v1/users/login", bytes.NewReader(body))
		loginRR := httptest.NewRecorder()
		http.HandlerFunc(testServer.LoginHandler).ServeHTTP(loginRR, req)
		require.Equal(t, http.StatusUnauthorized, loginRR.Code)
		require.Contains(t, loginRR.Body.String(), "Invalid username or password")
	}
}

func TestAPI_GetCurrentUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	req = withTestClaims(req)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.GetCurrentUserHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Equal(t, testUserClaims.Username, response["username"])
	require.Equal(t, testUserClaims.UserID, response["id"])
}

func TestAPI_GetCurrentUser_DeletedAccount(t *testing.T) {
	// Token skasowanego konta weryfikuje się do wygaśnięcia,
	// ale /users/me zgłasza wtedy 404.
	ghostClaims := &auth.AppClaims{UserID: "64f1c2ab9d1e4a0001b2cfff", Username: "ghost"}
	req := httptest.NewRequest("GET", "/api/v1/users/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), userContextKey, ghostClaims))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.GetCurrentUserHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
