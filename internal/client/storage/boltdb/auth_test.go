package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophshop/internal/client/storage"
)

func testAuthData() *storage.AuthData {
	return &storage.AuthData{
		Username:    "testuser",
		UserID:      "user-123",
		AccessToken: "test-token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
}

func TestSaveAuth_And_GetAuth(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	auth := testAuthData()
	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Username, got.Username)
	assert.Equal(t, auth.UserID, got.UserID)
	assert.Equal(t, auth.AccessToken, got.AccessToken)
	assert.Equal(t, auth.ExpiresAt, got.ExpiresAt)
}

func TestGetAuth_NotFound(t *testing.T) {
	store := createTestStorage(t)

	auth, err := store.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
	assert.Nil(t, auth)
}

func TestSaveAuth_Overwrites(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAuth(ctx, testAuthData()))

	// Повторный логин просто замещает сессию
	updated := testAuthData()
	updated.AccessToken = "new-token"
	require.NoError(t, store.SaveAuth(ctx, updated))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-token", got.AccessToken)
}

func TestDeleteAuth(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAuth(ctx, testAuthData()))
	require.NoError(t, store.DeleteAuth(ctx))

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestDeleteAuth_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.DeleteAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}
