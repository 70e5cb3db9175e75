package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "regular password",
			password: "password123",
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
		},
		{
			name:     "long password",
			password: "verylongpasswordwithmorethanfiftycharacters",
		},
		{
			name:     "short password",
			password: "secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, gotHash)
			assert.NotEqual(t, tt.password, gotHash)
		})
	}
}

func TestCompareHash(t *testing.T) {
	hash, err := GetHash("secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "matching password",
			password: "secret",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			password: "not-secret",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(hash, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetHash_SaltedHashesDiffer(t *testing.T) {
	first, err := GetHash("secret")
	require.NoError(t, err)
	second, err := GetHash("secret")
	require.NoError(t, err)

	// bcrypt генерирует соль на каждый вызов.
	assert.NotEqual(t, first, second)
	assert.NoError(t, CompareHash(first, "secret"))
	assert.NoError(t, CompareHash(second, "secret"))
}
