package bootstrap

import (
	"preloved-market/cmd/bootstrap/components"
	"preloved-market/internal/worker"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	worker.Module,
)
