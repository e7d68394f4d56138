package response

import (
	"time"

	"court-reserve/internal/domain/court"
	"court-reserve/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleResponse struct {
	ID        uuid.UUID `json:"id"`
	CourtID   uuid.UUID `json:"courtId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromSchedule(s *schedule.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:        s.ID(),
		CourtID:   s.CourtID(),
		StartTime: s.StartTime(),
		EndTime:   s.EndTime(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func FromSchedules(ss []*schedule.Schedule) []*ScheduleResponse {
	result := make([]*ScheduleResponse, len(ss))
	for i, s := range ss {
		result[i] = FromSchedule(s)
	}
	return result
}

type CourtResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCourt(c *court.Court) *CourtResponse {
	return &CourtResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func FromCourts(cs []*court.Court) []*CourtResponse {
	result := make([]*CourtResponse, len(cs))
	for i, c := range cs {
		result[i] = FromCourt(c)
	}
	return result
}
