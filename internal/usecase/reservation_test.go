//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"court-reserve/internal/domain/reservation"
	"court-reserve/internal/infra"
	"court-reserve/internal/pkg/clock"
	"court-reserve/internal/usecase"
	"court-reserve/internal/usecase/shared"
	"court-reserve/tests/common/builder"
	sharedmock "court-reserve/tests/mock/shared"
	usecasemock "court-reserve/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationUseCaseTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	reservationRepo *usecasemock.MockReservationRepository
	scheduleRepo    *usecasemock.MockScheduleRepository
	uow             *sharedmock.MockUnitOfWork
	tx              *sharedmock.MockTx
	writeRepo       *sharedmock.MockReservationWriteRepository
	clock           *clock.MockClock
	uc              usecase.ReservationUseCase
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reservationRepo = usecasemock.NewMockReservationRepository(s.mockCtrl)
	s.scheduleRepo = usecasemock.NewMockScheduleRepository(s.mockCtrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.tx = sharedmock.NewMockTx(s.mockCtrl)
	s.writeRepo = sharedmock.NewMockReservationWriteRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 14, 10, 0, 0, 0, time.UTC))

	s.uc = usecase.NewReservationUseCase(
		s.reservationRepo,
		s.scheduleRepo,
		s.uow,
		reservation.NewTieredRefundPolicy(),
		reservation.NewMoney(1000),
		s.clock,
	)
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

// expectWithin routes the transactional callback through the mocked Tx so
// write expectations on s.writeRepo fire.
func (s *ReservationUseCaseTestSuite) expectWithin() {
	s.tx.EXPECT().Reservations().Return(s.writeRepo).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).Times(1)
}

// ================================================================================
// BookReservation
// ================================================================================

func (s *ReservationUseCaseTestSuite) TestBookReservation() {
	s.Run("success: creates an active reservation at the booking price", func() {
		b := builder.NewReservationBuilder()
		sched := b.BuildSchedule()

		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(sched, nil)
		s.expectWithin()
		s.writeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.uc.BookReservation(context.Background(), b.GuestID, b.ScheduleID)
		s.Require().NoError(err)
		s.Require().NotNil(res)

		s.Equal(b.GuestID, res.GuestID())
		s.Equal(b.ScheduleID, res.ScheduleID())
		s.Equal(int64(1000), res.Value().Cents())
		s.True(res.RefundValue().IsZero())
		s.Equal(reservation.StatusReadyToPlay, res.Status())
	})

	s.Run("error: unknown schedule", func() {
		scheduleID := uuid.New()
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), scheduleID).
			Return(nil, infra.WrapRepoErr("schedule not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.BookReservation(context.Background(), uuid.New(), scheduleID)
		s.ErrorIs(err, usecase.ErrScheduleNotFound)
	})

	s.Run("error: schedule already has an active reservation", func() {
		b := builder.NewReservationBuilder()
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.expectWithin()
		s.writeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate reservation", errors.New("unique violation"), infra.KindDuplicateKey))

		_, err := s.uc.BookReservation(context.Background(), b.GuestID, b.ScheduleID)
		s.ErrorIs(err, usecase.ErrScheduleAlreadyReserved)
	})
}

// ================================================================================
// GetReservation / ListReservations
// ================================================================================

func (s *ReservationUseCaseTestSuite) TestGetReservation() {
	s.Run("success", func() {
		b := builder.NewReservationBuilder()
		stored := b.BuildActive()
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(stored, nil)

		res, err := s.uc.GetReservation(context.Background(), b.ID)
		s.Require().NoError(err)
		s.Equal(stored, res)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.GetReservation(context.Background(), id)
		s.ErrorIs(err, usecase.ErrReservationNotFound)
	})
}

func (s *ReservationUseCaseTestSuite) TestListReservations() {
	s.Run("returns cancelled history alongside active bookings", func() {
		active := builder.NewReservationBuilder().BuildActive()
		cancelled := builder.NewReservationBuilder().BuildCancelled(250)
		s.reservationRepo.EXPECT().FindAll(gomock.Any()).
			Return([]*reservation.Reservation{active, cancelled}, nil)

		list, err := s.uc.ListReservations(context.Background())
		s.Require().NoError(err)
		s.Equal([]*reservation.Reservation{active, cancelled}, list)
		s.False(list[0].IsCancelled())
		s.True(list[1].IsCancelled())
	})

	s.Run("error: repository failure is marked", func() {
		s.reservationRepo.EXPECT().FindAll(gomock.Any()).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("boom")))

		_, err := s.uc.ListReservations(context.Background())
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}

// ================================================================================
// CancelReservation
// ================================================================================

func (s *ReservationUseCaseTestSuite) TestCancelReservation() {
	// Slot starts 2026-06-15 10:00 UTC; builder value is 1000 cents.
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	tiers := []struct {
		name          string
		cancelAt      time.Time
		expectedCents int64
	}{
		{name: "full refund more than 24h ahead", cancelAt: start.Add(-36 * time.Hour), expectedCents: 1000},
		{name: "75% refund between 12h and 24h", cancelAt: start.Add(-18 * time.Hour), expectedCents: 750},
		{name: "50% refund between 2h and 12h", cancelAt: start.Add(-5 * time.Hour), expectedCents: 500},
		{name: "25% refund under 2h", cancelAt: start.Add(-30 * time.Minute), expectedCents: 250},
	}

	for _, tc := range tiers {
		s.Run(tc.name, func() {
			b := builder.NewReservationBuilder()
			b.StartTime = start
			b.EndTime = start.Add(time.Hour)
			res := b.BuildActive()

			s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
			s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
			s.expectWithin()
			s.writeRepo.EXPECT().Update(gomock.Any(), res).Return(nil)
			s.clock.Set(tc.cancelAt)

			cancelled, err := s.uc.CancelReservation(context.Background(), b.ID)
			s.Require().NoError(err)

			s.True(cancelled.IsCancelled())
			s.Equal(tc.expectedCents, cancelled.RefundValue().Cents())
			s.Equal(int64(1000), cancelled.Value().Cents())
		})
	}

	s.Run("error: already cancelled", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		res := b.BuildCancelled(500)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.clock.Set(start.Add(-36 * time.Hour))

		_, err := s.uc.CancelReservation(context.Background(), b.ID)
		s.ErrorIs(err, usecase.ErrReservationAlreadyCanceled)
	})

	s.Run("error: slot already started", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		res := b.BuildActive()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.clock.Set(start)

		_, err := s.uc.CancelReservation(context.Background(), b.ID)
		s.ErrorIs(err, usecase.ErrScheduleAlreadyStarted)
		s.False(res.IsCancelled(), "guard failure leaves the reservation untouched")
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.reservationRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.CancelReservation(context.Background(), id)
		s.ErrorIs(err, usecase.ErrReservationNotFound)
	})
}

// ================================================================================
// RescheduleReservation
// ================================================================================

func (s *ReservationUseCaseTestSuite) TestRescheduleReservation() {
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	s.Run("success: old reservation gets a full refund, new one is active", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		b.EndTime = start.Add(time.Hour)
		old := b.BuildActive()

		newB := builder.NewReservationBuilder()
		newSched := newB.BuildSchedule()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(old, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), newB.ScheduleID).Return(newSched, nil)
		s.expectWithin()
		s.writeRepo.EXPECT().Update(gomock.Any(), old).Return(nil)
		s.writeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		// 30 minutes before start would normally be the 25% tier
		s.clock.Set(start.Add(-30 * time.Minute))

		moved, err := s.uc.RescheduleReservation(context.Background(), b.ID, newB.ScheduleID)
		s.Require().NoError(err)

		s.True(old.IsCancelled())
		s.Equal(old.Value(), old.RefundValue(), "moving slots is never penalized")

		s.NotEqual(old.ID(), moved.ID())
		s.Equal(b.GuestID, moved.GuestID())
		s.Equal(newB.ScheduleID, moved.ScheduleID())
		s.Equal(old.Value(), moved.Value())
		s.False(moved.IsCancelled())
	})

	s.Run("error: cancelled reservations cannot move", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		res := b.BuildCancelled(1000)

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.clock.Set(start.Add(-36 * time.Hour))

		_, err := s.uc.RescheduleReservation(context.Background(), b.ID, uuid.New())
		s.ErrorIs(err, usecase.ErrReservationAlreadyCanceled)
	})

	s.Run("error: started slots cannot move", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		res := b.BuildActive()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.clock.Set(start.Add(time.Minute))

		_, err := s.uc.RescheduleReservation(context.Background(), b.ID, uuid.New())
		s.ErrorIs(err, usecase.ErrScheduleAlreadyStarted)
	})

	s.Run("error: unknown target schedule", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		res := b.BuildActive()
		newScheduleID := uuid.New()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), newScheduleID).
			Return(nil, infra.WrapRepoErr("schedule not found", errors.New("no rows"), infra.KindNotFound))
		s.clock.Set(start.Add(-36 * time.Hour))

		_, err := s.uc.RescheduleReservation(context.Background(), b.ID, newScheduleID)
		s.ErrorIs(err, usecase.ErrScheduleNotFound)
		s.False(res.IsCancelled(), "nothing is cancelled when the target slot is missing")
	})

	s.Run("error: target slot already reserved", func() {
		b := builder.NewReservationBuilder()
		b.StartTime = start
		b.EndTime = start.Add(time.Hour)
		res := b.BuildActive()

		newB := builder.NewReservationBuilder()

		s.reservationRepo.EXPECT().FindByID(gomock.Any(), b.ID).Return(res, nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), b.ScheduleID).Return(b.BuildSchedule(), nil)
		s.scheduleRepo.EXPECT().FindByID(gomock.Any(), newB.ScheduleID).Return(newB.BuildSchedule(), nil)
		s.expectWithin()
		s.writeRepo.EXPECT().Update(gomock.Any(), res).Return(nil)
		s.writeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate reservation", errors.New("unique violation"), infra.KindDuplicateKey))
		s.clock.Set(start.Add(-36 * time.Hour))

		_, err := s.uc.RescheduleReservation(context.Background(), b.ID, newB.ScheduleID)
		s.ErrorIs(err, usecase.ErrScheduleAlreadyReserved)
	})
}
