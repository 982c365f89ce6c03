package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_And_Verify(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	assert.NoError(t, VerifyPassword("correct-horse-battery", hash))
	assert.Error(t, VerifyPassword("wrong-password", hash))
}

func TestHashPassword_SaltIsRandom(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	// Одинаковые пароли дают разные хеши благодаря случайной соли
	assert.NotEqual(t, first, second)

	assert.NoError(t, VerifyPassword("password123", first))
	assert.NoError(t, VerifyPassword("password123", second))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.Error(t, VerifyPassword("password123", "not-a-hash"))
	assert.Error(t, VerifyPassword("password123", "$argon2id$v=19$broken"))
	assert.Error(t, VerifyPassword("", "$argon2id$"))
}

func TestGenerateSalt(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)
}
