package components

import (
	"parking-facility/internal/handler"
	"parking-facility/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewParkingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
