package storage

import "context"

//go:generate moq -out auth_mock.go . AuthStorage

// AuthData представляет сохраненную сессию покупателя
type AuthData struct {
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// AuthStorage defines interface for storing session data on client
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error
}
