package bootstrap

import (
	"hotel-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	BackendModule,
	KVStoreModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
