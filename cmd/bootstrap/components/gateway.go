package components

import (
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/usecase"

	"go.uber.org/fx"
)

// GatewayModule exposes the backend client through the ports the usecases
// declare.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			backend.NewClient,
			fx.As(new(usecase.SessionGateway)),
			fx.As(new(usecase.ModuleGateway)),
			fx.As(new(usecase.SiteConfigGateway)),
			fx.As(new(usecase.RoomGateway)),
			fx.As(new(usecase.BookingGateway)),
			fx.As(new(usecase.ActivityGateway)),
			fx.As(new(usecase.CheckInGateway)),
			fx.As(new(usecase.MyRoomGateway)),
			fx.As(new(usecase.CleaningGateway)),
			fx.As(new(usecase.StaffGateway)),
			fx.As(new(usecase.GuestGateway)),
			fx.As(new(usecase.EmployeeGateway)),
		),
	),
)
