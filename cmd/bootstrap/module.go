package bootstrap

import (
	"volunteer-hub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MailerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
