package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleClient  Role = "client"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may act on other renters' bookings.
func (r Role) IsPrivileged() bool {
	return r == RoleManager || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is an already-authenticated caller.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) CanActFor(renterID uuid.UUID) bool {
	return a.Role.IsPrivileged() || a.ID == renterID
}
