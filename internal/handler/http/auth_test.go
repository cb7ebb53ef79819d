package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

type fakeAuthService struct {
	loginFn func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Register(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	return user.User{}, nil
}

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret-key-for-jwt", "1h")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := NewAuthHandler(newTestJWTService(), &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			return auth.TokenResponse{AccessToken: "token-abc", AccessTokenExpiresIn: 1234}, nil
		},
	})

	body, _ := json.Marshal(auth.LoginRequest{Email: "staff@example.com", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"].(bool))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "token-abc", data["access_token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(newTestJWTService(), &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		},
	})

	body, _ := json.Marshal(auth.LoginRequest{Email: "staff@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	handler := NewAuthHandler(newTestJWTService(), &fakeAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return auth.TokenResponse{}, nil
		},
	})

	body, _ := json.Marshal(auth.LoginRequest{Email: "not-an-email", Password: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	handler := NewAuthHandler(newTestJWTService(), &fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	jwtService := newTestJWTService()
	handler := NewAuthHandler(jwtService, &fakeAuthService{})

	token, _, err := jwtService.GenerateAccessToken("user-1", "staff@example.com", user.RoleStaff)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, jwtService.IsTokenRevoked(token))
}

func TestAuthHandler_Logout_NoToken(t *testing.T) {
	handler := NewAuthHandler(newTestJWTService(), &fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
