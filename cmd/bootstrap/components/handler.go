package components

import (
	"rehearsal-rooms/internal/handler"
	"rehearsal-rooms/internal/handler/api"
	"rehearsal-rooms/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewSyncHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
