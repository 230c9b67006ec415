package components

import (
	"hotel-portal/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseSessionModule,
	usecaseCatalogModule,
	usecaseStayModule,
	usecaseManagementModule,
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		usecase.NewSessionUseCase,
		usecase.NewGuardUseCase,
		usecase.NewSiteConfigUseCase,
	),
)

var usecaseCatalogModule = fx.Module("usecase/catalog",
	fx.Provide(
		usecase.NewRoomUseCase,
		usecase.NewBookingUseCase,
		usecase.NewActivityUseCase,
	),
)

var usecaseStayModule = fx.Module("usecase/stay",
	fx.Provide(
		usecase.NewCheckInUseCase,
		usecase.NewMyRoomUseCase,
		usecase.NewCleaningUseCase,
	),
)

var usecaseManagementModule = fx.Module("usecase/management",
	fx.Provide(
		usecase.NewStaffUseCase,
		usecase.NewGuestUseCase,
		usecase.NewEmployeeUseCase,
	),
)
