package bootstrap

import (
	"log/slog"

	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default so package-level slog calls share it.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	slog.SetDefault(logger)
	return logger
}
