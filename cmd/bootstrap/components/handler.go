package components

import (
	"hotel-portal/internal/handler"
	"hotel-portal/internal/handler/api"
	"hotel-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSessionHandler,
		api.NewGuardHandler,
		api.NewSiteConfigHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewActivityHandler,
		api.NewCheckInHandler,
		api.NewMyRoomHandler,
		api.NewCleaningHandler,
		api.NewStaffHandler,
		api.NewGuestHandler,
		api.NewEmployeeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
