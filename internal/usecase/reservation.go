package usecase

import (
	"context"
	"errors"

	"court-reserve/internal/domain/reservation"
	"court-reserve/internal/domain/schedule"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/pkg/errs"
	"court-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound        = errors.New("reservation not found")
	ErrScheduleNotFound           = errors.New("schedule not found")
	ErrReservationAlreadyCanceled = errors.New("reservation is already cancelled")
	ErrScheduleAlreadyStarted     = errors.New("schedule has already started")
	ErrScheduleAlreadyReserved    = errors.New("schedule already has an active reservation")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
}

type ScheduleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error)
}

// ReservationUseCase is the reservation lifecycle: booking, lookup,
// cancellation with a tiered refund, and reschedule (cancel with full
// refund + fresh reservation on the new slot).
type ReservationUseCase interface {
	BookReservation(ctx context.Context, guestID, scheduleID uuid.UUID) (*reservation.Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListReservations(ctx context.Context) ([]*reservation.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	RescheduleReservation(ctx context.Context, id, newScheduleID uuid.UUID) (*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	uow             shared.UnitOfWork
	refundPolicy    reservation.RefundPolicy
	bookingPrice    reservation.Money
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	uow shared.UnitOfWork,
	refundPolicy reservation.RefundPolicy,
	bookingPrice reservation.Money,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		uow:             uow,
		refundPolicy:    refundPolicy,
		bookingPrice:    bookingPrice,
		clock:           clock,
	}
}

func (r *reservationUseCaseImpl) BookReservation(ctx context.Context, guestID, scheduleID uuid.UUID) (*reservation.Reservation, error) {
	if _, err := r.findSchedule(ctx, scheduleID); err != nil {
		return nil, err
	}

	res, err := reservation.NewReservation(guestID, scheduleID, r.bookingPrice)
	if err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrScheduleAlreadyReserved
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return res, nil
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.findReservation(ctx, id)
}

func (r *reservationUseCaseImpl) ListReservations(ctx context.Context) ([]*reservation.Reservation, error) {
	reservations, err := r.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservations, nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	sched, err := r.findSchedule(ctx, res.ScheduleID())
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if res.IsCancelled() {
		return nil, ErrReservationAlreadyCanceled
	}
	if sched.HasStarted(now) {
		return nil, ErrScheduleAlreadyStarted
	}

	refund := reservation.RefundValue(r.refundPolicy, res.Value(), sched.StartTime(), now)
	if err := res.Cancel(refund); err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Update(ctx, res)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return res, nil
}

func (r *reservationUseCaseImpl) RescheduleReservation(ctx context.Context, id, newScheduleID uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	currentSchedule, err := r.findSchedule(ctx, res.ScheduleID())
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	if res.IsCancelled() {
		return nil, ErrReservationAlreadyCanceled
	}
	if currentSchedule.HasStarted(now) {
		return nil, ErrScheduleAlreadyStarted
	}

	if _, err := r.findSchedule(ctx, newScheduleID); err != nil {
		return nil, err
	}

	// Moving slots is not penalized: the old reservation is cancelled with
	// a full refund and a fresh one is created at the original value.
	if err := res.Cancel(res.Value()); err != nil {
		return nil, err
	}

	newRes, err := reservation.NewReservation(res.GuestID(), newScheduleID, res.Value())
	if err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		return tx.Reservations().Create(ctx, newRes)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrScheduleAlreadyReserved
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return newRes, nil
}

func (r *reservationUseCaseImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

func (r *reservationUseCaseImpl) findSchedule(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	sched, err := r.scheduleRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sched, nil
}
