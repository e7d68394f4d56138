package components

import (
	"court-reserve/internal/handler"
	"court-reserve/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewGuestHandler,
		api.NewScheduleHandler,
	),
	fx.Invoke(handler.NewRouter),
)
