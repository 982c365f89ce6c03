package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "alice", false},
		{"valid with digits", "alice_2024", false},
		{"valid minimum length", "abc", false},
		{"valid maximum length", strings.Repeat("a", 32), false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 33), true},
		{"with space", "alice smith", true},
		{"with dash", "alice-smith", true},
		{"with unicode", "алиса", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("password123"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}
