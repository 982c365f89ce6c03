package auth

import (
	"context"
	"errors"
)

//go:generate moq -out provider_mock.go . TokenProvider

// ErrNotAuthenticated indicates that no valid session exists:
// либо покупатель не логинился, либо токен истек
var ErrNotAuthenticated = errors.New("not authenticated")

// TokenProvider hands out the bearer credential for remote requests.
// Sync runner запрашивает токен перед каждым проходом: если токена
// нет, неаутентифицированный запрос не отправляется.
type TokenProvider interface {
	// BearerToken returns a currently valid access token
	// Returns ErrNotAuthenticated if there is no usable session
	BearerToken(ctx context.Context) (string, error)
}
