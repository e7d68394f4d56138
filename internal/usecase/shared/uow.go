package shared

import (
	"context"

	"court-reserve/internal/domain/reservation"
)

// UnitOfWork scopes writes to one transaction. Reschedule depends on this:
// cancelling the old reservation and creating its replacement must commit
// or roll back together.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationWriteRepository
}

type ReservationWriteRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	Update(ctx context.Context, res *reservation.Reservation) error
}
