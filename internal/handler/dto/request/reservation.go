package request

import (
	"github.com/google/uuid"
)

type BookReservationRequest struct {
	GuestID    uuid.UUID `json:"guest_id" binding:"required"`
	ScheduleID uuid.UUID `json:"schedule_id" binding:"required"`
}

type RescheduleReservationRequest struct {
	ScheduleID uuid.UUID `json:"schedule_id" binding:"required"`
}
