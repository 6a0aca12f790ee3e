package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBearerToken(t *testing.T) {
	token, ok := ExtractBearerToken("Bearer secret")
	assert.True(t, ok)
	assert.Equal(t, "secret", token)

	token, ok = ExtractBearerToken("Bearer   secret  ")
	assert.True(t, ok)
	assert.Equal(t, "secret", token)

	_, ok = ExtractBearerToken("bearer secret")
	assert.False(t, ok)

	_, ok = ExtractBearerToken("Basic secret")
	assert.False(t, ok)

	_, ok = ExtractBearerToken("")
	assert.False(t, ok)
}

func TestIsAuthorized(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		adminToken string
		want       bool
	}{
		{"exact match", "Bearer secret", "secret", true},
		{"trimmed token matches", "Bearer  secret ", "secret", true},
		{"wrong token", "Bearer wrong", "secret", false},
		{"missing header", "", "secret", false},
		{"lowercase prefix", "bearer secret", "secret", false},
		{"no prefix", "secret", "secret", false},
		{"unconfigured admin token", "Bearer secret", "", false},
		{"empty token against empty secret", "Bearer ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthorized(tt.header, tt.adminToken))
		})
	}
}
