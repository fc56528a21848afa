//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"rehearsal-rooms/internal/pkg/config"
	"rehearsal-rooms/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := config.NewTestConfig()
	svc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)

	clientID := uuid.New()

	t.Run("round trip preserves the client identity", func(t *testing.T) {
		token, err := svc.GenerateToken(clientID, "The Lowtones")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, clientID, claims.ClientID)
		assert.Equal(t, "The Lowtones", claims.ClientName)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService(cfg.JWT.Secret, -time.Minute)
		token, err := expired.GenerateToken(clientID, "The Lowtones")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("another-secret", cfg.JWT.Duration)
		token, err := other.GenerateToken(clientID, "The Lowtones")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
