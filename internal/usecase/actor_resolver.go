package usecase

import (
	"rental-engine/internal/domain/user"
	"rental-engine/internal/pkg/errs"
	"rental-engine/internal/pkg/jwt"
)

// ActorResolver turns a bearer token into the pre-checked caller every
// command and query is invoked with.
type ActorResolver interface {
	Resolve(tokenString string) (user.Actor, error)
}

type jwtActorResolver struct {
	jwtService *jwt.Service
}

func NewActorResolver(jwtService *jwt.Service) ActorResolver {
	return &jwtActorResolver{jwtService: jwtService}
}

func (r *jwtActorResolver) Resolve(tokenString string) (user.Actor, error) {
	userID, claims, err := r.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Wrapf(err, "token for %s", userID)
	}

	return user.Actor{ID: userID, Role: role}, nil
}
