//go:build unit

package user_test

import (
	"testing"

	"rental-engine/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"client", "manager", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActorCanActFor(t *testing.T) {
	renter := uuid.New()

	assert.True(t, user.Actor{ID: renter, Role: user.RoleClient}.CanActFor(renter))
	assert.False(t, user.Actor{ID: uuid.New(), Role: user.RoleClient}.CanActFor(renter))
	assert.True(t, user.Actor{ID: uuid.New(), Role: user.RoleManager}.CanActFor(renter))
	assert.True(t, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}.CanActFor(renter))
}
