package bootstrap

import (
	"errors"

	"rental-engine/internal/pkg/config"
	"rental-engine/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// minimum HS256 secret length
const minSecretLen = 8

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if len(cfg.JWT.Secret) < minSecretLen {
		return nil, errors.New("JWT_SECRET must be at least 8 bytes")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
