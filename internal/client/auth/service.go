package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/iudanet/gophshop/internal/client/api"
	"github.com/iudanet/gophshop/internal/client/storage"
	"github.com/iudanet/gophshop/pkg/api"
)

// Service manages the stored shopper session: login/logout against the
// backend and token validity checks for the sync runner
type Service struct {
	apiClient clientapi.ClientAPI
	storage   storage.AuthStorage
	logger    *slog.Logger
}

// Compile-time check that Service implements TokenProvider
var _ TokenProvider = (*Service)(nil)

// NewService creates a new auth service
func NewService(apiClient clientapi.ClientAPI, authStorage storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		storage:   authStorage,
		logger:    logger,
	}
}

// Register регистрирует нового покупателя на сервере.
// Сессию не создает: после регистрации нужен Login.
func (s *Service) Register(ctx context.Context, username, password string) error {
	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("registered", "user_id", resp.UserID)
	return nil
}

// Login выполняет аутентификацию и сохраняет сессию локально
func (s *Service) Login(ctx context.Context, username, password string) error {
	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// user_id берем из claims токена, отдельного поля в ответе нет
	userID, _ := tokenUserID(resp.AccessToken)

	auth := &storage.AuthData{
		Username:    username,
		UserID:      userID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Unix() + resp.ExpiresIn,
	}
	if err := s.storage.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("logged in", "username", username)
	return nil
}

// Logout удаляет локальную сессию
func (s *Service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию для отображения статуса
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return auth, nil
}

// BearerToken returns a currently valid access token.
// Срок действия проверяется по exp claim самого JWT (подпись клиент
// проверить не может — секрет знает только сервер); если claim
// нечитаем, используется сохраненный при логине ExpiresAt.
func (s *Service) BearerToken(ctx context.Context) (string, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	expiresAt := auth.ExpiresAt
	if exp, err := tokenExpiry(auth.AccessToken); err == nil {
		expiresAt = exp
	}

	if time.Now().Unix() >= expiresAt {
		s.logger.Debug("access token expired", "username", auth.Username)
		return "", ErrNotAuthenticated
	}

	return auth.AccessToken, nil
}

// IsAuthenticated reports whether a valid session exists
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	_, err := s.BearerToken(ctx)
	return err == nil
}

// tokenExpiry достает exp claim из JWT без проверки подписи
func tokenExpiry(tokenString string) (int64, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, fmt.Errorf("failed to parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, fmt.Errorf("token has no exp claim")
	}

	return exp.Unix(), nil
}

// tokenUserID достает user_id claim из JWT без проверки подписи
func tokenUserID(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("token has no user_id claim")
	}

	return userID, nil
}
