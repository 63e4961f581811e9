package bootstrap

import (
	"rental-engine/cmd/bootstrap/components"
	"rental-engine/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the application for the configured storage backend.
func Module(cfg config.Config) fx.Option {
	persistence := fx.Options(DBModule, components.PostgresPersistenceModule)
	if cfg.Booking.Storage == config.StorageMemory {
		persistence = components.MemoryPersistenceModule
	}

	return fx.Options(
		fx.Supply(cfg),
		LoggerModule,
		TracingModule,
		JWTModule,
		MessagingModule,
		persistence,
		components.UseCaseModule,
		components.HandlerModule,
		components.WorkerModule,
	)
}
