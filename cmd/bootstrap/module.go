package bootstrap

import (
	"rehearsal-rooms/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	ExtCalModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
