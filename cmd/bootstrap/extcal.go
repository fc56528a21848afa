package bootstrap

import (
	"time"

	"rehearsal-rooms/internal/infra/extcal"
	"rehearsal-rooms/internal/pkg/config"
	"rehearsal-rooms/internal/usecase/shared"

	"go.uber.org/fx"
)

var ExtCalModule = fx.Module("extcal",
	fx.Provide(
		NewBusyProvider,
		NewRoomLocation,
	),
)

func NewBusyProvider(cfg config.Config) shared.BusyProvider {
	return extcal.NewClient(cfg.ExtCal)
}

// NewRoomLocation resolves the timezone all slot grids are anchored to.
func NewRoomLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Server.TimeZone)
}
