//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"court-reserve/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedule(t *testing.T) {
	courtID := uuid.New()
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		s, err := schedule.NewSchedule(courtID, start, start.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, courtID, s.CourtID())
		assert.Equal(t, start, s.StartTime())
	})

	t.Run("missing court id", func(t *testing.T) {
		_, err := schedule.NewSchedule(uuid.Nil, start, start.Add(time.Hour))
		assert.ErrorIs(t, err, schedule.ErrMissingCourtID)
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := schedule.NewSchedule(courtID, start, start)
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeSlot)

		_, err = schedule.NewSchedule(courtID, start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, schedule.ErrInvalidTimeSlot)
	})
}

func TestSchedule_HasStarted(t *testing.T) {
	start := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	s, err := schedule.NewSchedule(uuid.New(), start, start.Add(time.Hour))
	require.NoError(t, err)

	assert.False(t, s.HasStarted(start.Add(-time.Second)))
	assert.True(t, s.HasStarted(start), "slot start is inclusive")
	assert.True(t, s.HasStarted(start.Add(time.Second)))
}
