//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"rental-engine/internal/domain/user"
	"rental-engine/internal/pkg/jwt"
	"rental-engine/internal/usecase"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorResolver(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	resolver := usecase.NewActorResolver(svc)

	t.Run("resolves id and role", func(t *testing.T) {
		actor := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		token, err := svc.GenerateToken(actor)
		require.NoError(t, err)

		got, err := resolver.Resolve(token)

		require.NoError(t, err)
		assert.Equal(t, actor, got)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := jwt.Claims{
			Role: "auditor",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "rental-engine",
				Subject:   uuid.NewString(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = resolver.Resolve(token)

		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := resolver.Resolve("not-a-token")
		assert.Error(t, err)
	})
}
