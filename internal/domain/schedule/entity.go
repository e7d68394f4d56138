package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrMissingCourtID  = errors.New("court id is required")
)

// Schedule is a bookable time slot on a court. Slots are created by the
// court-scheduling side and read-only to the reservation lifecycle.
type Schedule struct {
	id        uuid.UUID
	courtID   uuid.UUID
	startTime time.Time
	endTime   time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewSchedule(courtID uuid.UUID, startTime, endTime time.Time) (*Schedule, error) {
	if courtID == uuid.Nil {
		return nil, ErrMissingCourtID
	}
	if !startTime.Before(endTime) {
		return nil, ErrInvalidTimeSlot
	}

	return &Schedule{
		id:        uuid.New(),
		courtID:   courtID,
		startTime: startTime,
		endTime:   endTime,
	}, nil
}

func Reconstruct(id, courtID uuid.UUID, startTime, endTime, createdAt, updatedAt time.Time) *Schedule {
	return &Schedule{
		id:        id,
		courtID:   courtID,
		startTime: startTime,
		endTime:   endTime,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// HasStarted reports whether the slot's start time is at or before now.
func (s *Schedule) HasStarted(now time.Time) bool {
	return !s.startTime.After(now)
}

func (s *Schedule) ID() uuid.UUID        { return s.id }
func (s *Schedule) CourtID() uuid.UUID   { return s.courtID }
func (s *Schedule) StartTime() time.Time { return s.startTime }
func (s *Schedule) EndTime() time.Time   { return s.endTime }
func (s *Schedule) CreatedAt() time.Time { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time { return s.updatedAt }
