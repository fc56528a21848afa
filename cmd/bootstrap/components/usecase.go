package components

import (
	"rehearsal-rooms/internal/pkg/clock"
	"rehearsal-rooms/internal/pkg/config"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewGridService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		NewSyncCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)

func NewSyncCommands(
	cfg config.Config,
	rooms shared.RoomRepository,
	bookings shared.BookingRepository,
	provider shared.BusyProvider,
	clk clock.Clock,
) commands.SyncCommands {
	return commands.NewSyncCommands(rooms, bookings, provider, clk, cfg.ExtCal.SyncWindow)
}
