//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-engine/internal/domain/user"
	"rental-engine/internal/pkg/config"
	"rental-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(actor)
	require.NoError(t, err)
	return token
}

// NewActor returns a fresh actor and a token for it.
func (h *JWTHelper) NewActor(t *testing.T, role user.Role) (user.Actor, string) {
	t.Helper()
	actor := user.Actor{ID: uuid.New(), Role: role}
	return actor, h.GenerateToken(t, actor)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor user.Actor) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(actor)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
