package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"opaque token", "not-a-jwt", false},
		{"empty", "", false},
		{"expired", signedToken(t, now.Add(-time.Hour)), true},
		{"inside leeway", signedToken(t, now.Add(5*time.Second)), true},
		{"valid", signedToken(t, now.Add(time.Hour)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accessTokenExpired(tt.token, now))
		})
	}
}
