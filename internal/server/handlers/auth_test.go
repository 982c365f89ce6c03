package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophshop/internal/crypto"
	"github.com/iudanet/gophshop/internal/models"
	"github.com/iudanet/gophshop/internal/server/storage"
	"github.com/iudanet/gophshop/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret"),
		AccessTokenTTL: time.Hour,
	}
}

// memUserStorage возвращает мок, хранящий пользователей в map
func memUserStorage() (*storage.UserStorageMock, map[string]*models.User) {
	users := map[string]*models.User{}
	mock := &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			if _, exists := users[user.Username]; exists {
				return storage.ErrUserAlreadyExists
			}
			users[user.Username] = user
			return nil
		},
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			user, ok := users[username]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			return user, nil
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			for _, user := range users {
				if user.ID == userID {
					return user, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
		UpdateLastLoginFunc: func(ctx context.Context, userID string, lastLogin time.Time) error {
			return nil
		},
	}
	return mock, users
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users, created := memUserStorage()
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.UserID)

	// Пароль сохранен как argon2id хеш, не plaintext
	user := created["alice"]
	require.NotNil(t, user)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, crypto.VerifyPassword("password123", user.PasswordHash))
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	users, _ := memUserStorage()
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	req := api.RegisterRequest{Username: "alice", Password: "password123"}

	rec := postJSON(t, h.Register, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Register, "/api/v1/auth/register", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "password123"},
		{"username with space", "alice smith", "password123"},
		{"password too short", "alice", "short"},
		{"empty password", "alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, _ := memUserStorage()
			h := NewAuthHandler(testLogger(), users, testJWTConfig())

			rec := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, users.CreateUserCalls())
		})
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	users, _ := memUserStorage()
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString("not-json"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	users, _ := memUserStorage()
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	// Выданный токен проходит валидацию и несет наши claims
	claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.UserID)

	assert.Len(t, users.UpdateLastLoginCalls(), 1)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	users, _ := memUserStorage()
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Register, "/api/v1/auth/register", api.RegisterRequest{
		Username: "alice",
		Password: "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	users, _ := memUserStorage()
	h := NewAuthHandler(testLogger(), users, testJWTConfig())

	rec := postJSON(t, h.Login, "/api/v1/auth/login", api.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})

	// Не раскрываем, существует ли пользователь
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}
