//go:build unit

package response_test

import (
	"testing"
	"time"

	"court-reserve/internal/domain/reservation"
	"court-reserve/internal/handler/dto/response"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestFromReservation(t *testing.T) {
	id := uuid.New()
	guestID := uuid.New()
	scheduleID := uuid.New()
	createdAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)

	t.Run("active reservation maps to the human-facing label", func(t *testing.T) {
		res := reservation.Reconstruct(
			id, guestID, scheduleID,
			reservation.NewMoney(1000), reservation.NewMoney(0),
			reservation.StatusReadyToPlay,
			createdAt, updatedAt,
		)

		expected := &response.ReservationResponse{
			ID:          id,
			GuestID:     guestID,
			ScheduleID:  scheduleID,
			ValueCents:  1000,
			RefundCents: 0,
			Status:      "ready to play",
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		}

		if diff := cmp.Diff(expected, response.FromReservation(res)); diff != "" {
			t.Errorf("ReservationResponse mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cancelled reservation keeps its refund", func(t *testing.T) {
		res := reservation.Reconstruct(
			id, guestID, scheduleID,
			reservation.NewMoney(1000), reservation.NewMoney(750),
			reservation.StatusCancelled,
			createdAt, updatedAt,
		)

		got := response.FromReservation(res)
		if got.Status != "cancelled" {
			t.Errorf("expected cancelled status, got %q", got.Status)
		}
		if got.RefundCents != 750 {
			t.Errorf("expected refund of 750 cents, got %d", got.RefundCents)
		}
	})
}
