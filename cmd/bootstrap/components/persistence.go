package components

import (
	"court-reserve/internal/infra"
	"court-reserve/internal/infra/repository"
	"court-reserve/internal/infra/uow"
	"court-reserve/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Reservation
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		// Schedule
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
			fx.As(new(usecase.ScheduleAdminRepository)),
		),
		// Guest
		fx.Annotate(
			repository.NewGuestRepository,
			fx.As(new(usecase.GuestRepository)),
		),
		// Court
		fx.Annotate(
			repository.NewCourtRepository,
			fx.As(new(usecase.CourtRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
