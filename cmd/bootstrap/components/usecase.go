package components

import (
	"court-reserve/internal/domain/reservation"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/config"
	"court-reserve/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		reservation.NewTieredRefundPolicy,
		NewBookingPrice,
		usecase.NewReservationUseCase,
		usecase.NewGuestUseCase,
		usecase.NewScheduleUseCase,
		usecase.NewCourtUseCase,
	),
)

func NewBookingPrice(cfg config.Config) (reservation.Money, error) {
	return reservation.NewMoneyFromCents(cfg.Booking.DepositCents)
}
