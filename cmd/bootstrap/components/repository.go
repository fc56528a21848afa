package components

import (
	repo_impl "rehearsal-rooms/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repo_impl.NewPgTxRunner,
		repo_impl.NewRoomRepository,
		repo_impl.NewBookingRepository,
	),
)
