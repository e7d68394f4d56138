package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	CourtID   uuid.UUID `json:"court_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type CreateCourtRequest struct {
	Name string `json:"name" binding:"required"`
}
