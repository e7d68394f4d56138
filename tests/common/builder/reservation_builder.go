//go:build unit

package builder

import (
	"time"

	domreservation "court-reserve/internal/domain/reservation"
	domschedule "court-reserve/internal/domain/schedule"
	reqdto "court-reserve/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	GuestID    uuid.UUID
	ScheduleID uuid.UUID
	CourtID    uuid.UUID
	ValueCents int64
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	start := now.Add(48 * time.Hour)
	return &ReservationBuilder{
		ID:         uuid.New(),
		GuestID:    uuid.New(),
		ScheduleID: uuid.New(),
		CourtID:    uuid.New(),
		ValueCents: 1000,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	return domreservation.NewReservation(r.GuestID, r.ScheduleID, domreservation.NewMoney(r.ValueCents))
}

func (r *ReservationBuilder) BuildActive() *domreservation.Reservation {
	return domreservation.Reconstruct(
		r.ID, r.GuestID, r.ScheduleID,
		domreservation.NewMoney(r.ValueCents), domreservation.NewMoney(0),
		domreservation.StatusReadyToPlay,
		r.CreatedAt, r.UpdatedAt,
	)
}

func (r *ReservationBuilder) BuildCancelled(refundCents int64) *domreservation.Reservation {
	return domreservation.Reconstruct(
		r.ID, r.GuestID, r.ScheduleID,
		domreservation.NewMoney(r.ValueCents), domreservation.NewMoney(refundCents),
		domreservation.StatusCancelled,
		r.CreatedAt, r.UpdatedAt,
	)
}

func (r *ReservationBuilder) BuildSchedule() *domschedule.Schedule {
	return domschedule.Reconstruct(r.ScheduleID, r.CourtID, r.StartTime, r.EndTime, r.CreatedAt, r.UpdatedAt)
}

func (r *ReservationBuilder) BuildBookRequestDTO() reqdto.BookReservationRequest {
	return reqdto.BookReservationRequest{
		GuestID:    r.GuestID,
		ScheduleID: r.ScheduleID,
	}
}

func (r *ReservationBuilder) BuildRescheduleRequestDTO(newScheduleID uuid.UUID) reqdto.RescheduleReservationRequest {
	return reqdto.RescheduleReservationRequest{
		ScheduleID: newScheduleID,
	}
}
