package bootstrap

import (
	"fmt"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessDuration, err := time.ParseDuration(cfg.JWT.AccessDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_DURATION: %w", err)
	}

	refreshDuration, err := time.ParseDuration(cfg.JWT.RefreshDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, accessDuration, refreshDuration), nil
}
