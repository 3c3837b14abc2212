package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateahq/Platea_Backend/internal/auth"
	"github.com/plateahq/Platea_Backend/internal/constants"
	"github.com/plateahq/Platea_Backend/internal/handlers"
	"github.com/plateahq/Platea_Backend/internal/models"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// mockAuthManager records calls and returns scripted results.
type mockAuthManager struct {
	registerUser  *models.User
	registerErr   error
	loginUser     *models.User
	loginToken    string
	loginErr      error
	logoutTokens  []string
	logoutErr     error
	authUser      *models.User
	authErr       error
	lastLoginArgs [2]string
}

func (m *mockAuthManager) RegisterUser(_ context.Context, _ *models.RegistrationRequest) (*models.User, error) {
	return m.registerUser, m.registerErr
}

func (m *mockAuthManager) LoginUser(_ context.Context, email, password string) (*models.User, string, error) {
	m.lastLoginArgs = [2]string{email, password}
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuthManager) AuthenticateToken(_ context.Context, _ string) (*models.User, error) {
	return m.authUser, m.authErr
}

func (m *mockAuthManager) Logout(_ context.Context, token string) error {
	m.logoutTokens = append(m.logoutTokens, token)
	return m.logoutErr
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var response utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	utils.InitValidator()

	mock := &mockAuthManager{
		registerUser: &models.User{ID: 1, Email: "john@example.com"},
	}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	body := `{"firstName":"John","lastName":"Doe","email":"john@example.com",` +
		`"password":"Str0ng!pass","restaurantName":"Cafe Luna","role":"owner"}`
	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeResponse(t, w)
	assert.True(t, response.Success)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "john@example.com", data["email"])
}

func TestRegisterMalformedBody(t *testing.T) {
	mock := &mockAuthManager{}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeResponse(t, w)
	assert.False(t, response.Success)
}

func TestRegisterConflict(t *testing.T) {
	mock := &mockAuthManager{
		registerErr: utils.NewDuplicateError(constants.MsgAccountConflict),
	}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	body := `{"firstName":"John","lastName":"Doe","email":"john@example.com",` +
		`"password":"Str0ng!pass","restaurantName":"Cafe Luna","role":"owner"}`
	req := httptest.NewRequest("POST", "/api/auth/signup", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	response := decodeResponse(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, constants.CodeConflict, response.Error.Code)
	assert.Equal(t, constants.MsgAccountConflict, response.Error.Message)
}

func TestLoginSetsHardenedCookie(t *testing.T) {
	utils.InitValidator()

	mock := &mockAuthManager{
		loginUser:  &models.User{ID: 1, Email: "john@example.com", Role: "owner"},
		loginToken: "issued-token",
	}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	body := `{"email":"john@example.com","password":"Str0ng!pass"}`
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [2]string{"john@example.com", "Str0ng!pass"}, mock.lastLoginArgs)

	cookie := findCookie(t, w, constants.AuthTokenCookie)
	require.NotNil(t, cookie, "expected the auth cookie to be set")
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((2 * time.Hour).Seconds()), cookie.MaxAge)

	// The raw token travels only in the cookie, never in the body.
	assert.NotContains(t, w.Body.String(), "issued-token")

	response := decodeResponse(t, w)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Bearer", data["token_type"])
	assert.Equal(t, float64(7200), data["expires_in"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	utils.InitValidator()

	mock := &mockAuthManager{
		loginErr: utils.NewInvalidCredentialsError(constants.MsgInvalidCredentials),
	}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	body := `{"email":"john@example.com","password":"Wr0ng!pass"}`
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	response := decodeResponse(t, w)
	require.NotNil(t, response.Error)
	assert.Equal(t, constants.CodeInvalidCredentials, response.Error.Code)
	assert.Equal(t, constants.MsgInvalidCredentials, response.Error.Message)

	assert.Nil(t, findCookie(t, w, constants.AuthTokenCookie))
}

func TestLoginMissingFields(t *testing.T) {
	utils.InitValidator()

	mock := &mockAuthManager{}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(`{"email":"a@b.co"}`))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCurrentUser(t *testing.T) {
	mock := &mockAuthManager{}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	user := &models.User{ID: 1, Email: "john@example.com", Role: "owner"}
	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserContextKey, user))

	w := httptest.NewRecorder()
	handler.GetCurrentUser(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "john@example.com", data["email"])

	// The hash field is excluded from serialization entirely.
	_, present := data["password_hash"]
	assert.False(t, present)
}

func TestGetCurrentUserWithoutContext(t *testing.T) {
	mock := &mockAuthManager{}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	w := httptest.NewRecorder()
	handler.GetCurrentUser(w, httptest.NewRequest("GET", "/api/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	mock := &mockAuthManager{}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")

	w := httptest.NewRecorder()
	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"some-token"}, mock.logoutTokens)

	// The auth cookie is cleared.
	cookie := findCookie(t, w, constants.AuthTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)

	response := decodeResponse(t, w)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, constants.MsgLogoutSuccess, data["message"])
}

func TestLogoutWithoutToken(t *testing.T) {
	mock := &mockAuthManager{}
	handler := handlers.NewAuthHandler(mock, 2*time.Hour)

	w := httptest.NewRecorder()
	handler.Logout(w, httptest.NewRequest("POST", "/api/auth/logout", nil))

	// Logout without a credential still reports success.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{""}, mock.logoutTokens)
}
