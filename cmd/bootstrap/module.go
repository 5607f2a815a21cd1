package bootstrap

import (
	"parking-facility/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	FacilityModule,
	components.UseCaseModule,
	components.HandlerModule,
)
