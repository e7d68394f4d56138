package response

import (
	"time"

	"court-reserve/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	GuestID     uuid.UUID `json:"guestId"`
	ScheduleID  uuid.UUID `json:"scheduleId"`
	ValueCents  int64     `json:"valueCents"`
	RefundCents int64     `json:"refundCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          r.ID(),
		GuestID:     r.GuestID(),
		ScheduleID:  r.ScheduleID(),
		ValueCents:  r.Value().Cents(),
		RefundCents: r.RefundValue().Cents(),
		Status:      statusLabel(r.Status()),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func FromReservations(rs []*reservation.Reservation) []*ReservationResponse {
	result := make([]*ReservationResponse, len(rs))
	for i, r := range rs {
		result[i] = FromReservation(r)
	}
	return result
}

// statusLabel is the only place the core enum becomes transport text.
func statusLabel(s reservation.Status) string {
	switch s {
	case reservation.StatusReadyToPlay:
		return "ready to play"
	case reservation.StatusCancelled:
		return "cancelled"
	default:
		return string(s)
	}
}
