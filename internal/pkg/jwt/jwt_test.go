//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"rental-engine/internal/domain/user"
	"rental-engine/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	actor := user.Actor{ID: uuid.New(), Role: user.RoleManager}

	token, err := svc.GenerateToken(actor)
	require.NoError(t, err)

	id, claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, id)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "rental-engine", claims.Issuer)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	actor := user.Actor{ID: uuid.New(), Role: user.RoleClient}

	sign := func(t *testing.T, method gojwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() jwt.Claims {
		return jwt.Claims{
			Role: "client",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "rental-engine",
				Subject:   actor.ID.String(),
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	cases := []struct {
		name  string
		token func(t *testing.T) string
		errIs error
	}{
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-token" },
			errIs: jwt.ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS256, []byte("other"), valid())
			},
			errIs: jwt.ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, gojwt.SigningMethodHS256, []byte("test-secret"), c)
			},
			errIs: jwt.ErrExpiredToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = nil
				return sign(t, gojwt.SigningMethodHS256, []byte("test-secret"), c)
			},
			errIs: jwt.ErrInvalidToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				c := valid()
				c.Issuer = "someone-else"
				return sign(t, gojwt.SigningMethodHS256, []byte("test-secret"), c)
			},
			errIs: jwt.ErrInvalidToken,
		},
		{
			name: "unexpected algorithm",
			token: func(t *testing.T) string {
				return sign(t, gojwt.SigningMethodHS512, []byte("test-secret"), valid())
			},
			errIs: jwt.ErrInvalidToken,
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				c := valid()
				c.Subject = "alice"
				return sign(t, gojwt.SigningMethodHS256, []byte("test-secret"), c)
			},
			errIs: jwt.ErrInvalidToken,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.ValidateToken(tc.token(t))
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
